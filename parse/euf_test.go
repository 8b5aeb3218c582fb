package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/adpll/cnf"
	"github.com/signadot/adpll/theory/euf"
)

func TestEUF(t *testing.T) {
	input := strings.Join([]string{
		"== 1(1 2) 1",
		"== 1(2) 2(1)",
		"== 1(1(1 2) 2) 3",
		"== 1 3",
		"--",
		"p cnf 4 4",
		"1 0 2 0 3 0 -4 0",
	}, "\n")

	lits, f, err := EUF([]byte(input))
	if err != nil {
		t.Fatalf("EUF() error: %v", err)
	}

	wantLits := []euf.Lit{
		euf.Eq(euf.Ap(1, euf.Atom(1), euf.Atom(2)), euf.Atom(1)),
		euf.Eq(euf.Ap(1, euf.Atom(2)), euf.Ap(2, euf.Atom(1))),
		euf.Eq(euf.Ap(1, euf.Ap(1, euf.Atom(1), euf.Atom(2)), euf.Atom(2)), euf.Atom(3)),
		euf.Eq(euf.Atom(1), euf.Atom(3)),
	}
	if len(lits) != len(wantLits) {
		t.Fatalf("parsed %d literals, want %d", len(lits), len(wantLits))
	}
	for i := range wantLits {
		if lits[i].Eq != wantLits[i].Eq ||
			!lits[i].L.Equal(wantLits[i].L) || !lits[i].R.Equal(wantLits[i].R) {
			t.Errorf("literal %d = %v, want %v", i+1, lits[i], wantLits[i])
		}
	}

	wantF := cnf.Formula{
		cnf.NewClause(1), cnf.NewClause(2), cnf.NewClause(3), cnf.NewClause(-4),
	}
	if diff := cmp.Diff(wantF, f); diff != "" {
		t.Errorf("formula mismatch (-want +got):\n%s", diff)
	}
}

func TestEUFLitForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  euf.Lit
	}{
		{"equality", "== 1 2", euf.Eq(euf.Atom(1), euf.Atom(2))},
		{"disequality", "/= 1 2", euf.Ne(euf.Atom(1), euf.Atom(2))},
		{"nullary application", "== 1() 1", euf.Eq(euf.Ap(1), euf.Atom(1))},
		{
			"spaces between tokens",
			"==  1 ( 2  3 )   4",
			euf.Eq(euf.Ap(1, euf.Atom(2), euf.Atom(3)), euf.Atom(4)),
		},
		{
			"nested applications",
			"/= 1(2(3) 4) 5",
			euf.Ne(euf.Ap(1, euf.Ap(2, euf.Atom(3)), euf.Atom(4)), euf.Atom(5)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lits, _, err := EUF([]byte(tt.input + "\n--\np cnf 1 1\n1 0"))
			if err != nil {
				t.Fatalf("EUF() error: %v", err)
			}
			if len(lits) != 1 {
				t.Fatalf("parsed %d literals, want 1", len(lits))
			}
			got := lits[0]
			if got.Eq != tt.want.Eq || !got.L.Equal(tt.want.L) || !got.R.Equal(tt.want.R) {
				t.Errorf("literal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEUFErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"bad equality symbol", "=> 1 2\n--\np cnf 1 1\n1 0", ErrEqSymbol},
		{"empty literal line", "\n--\np cnf 1 1\n1 0", ErrEqSymbol},
		{"missing atom", "== x 2\n--\np cnf 1 1\n1 0", ErrAtom},
		{"unterminated application", "== 1(2 3\n--\np cnf 1 1\n1 0", ErrApTerm},
		{"bad dimacs block", "== 1 2\n--\np cnf 1 99\n1 0", ErrClauseCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := EUF([]byte(tt.input))
			if err == nil {
				t.Fatal("EUF() succeeded, want error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("EUF() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEUFWithoutSeparator(t *testing.T) {
	lits, f, err := EUF([]byte("== 1 2\n/= 1 2"))
	if err != nil {
		t.Fatalf("EUF() error: %v", err)
	}
	if len(lits) != 2 {
		t.Errorf("parsed %d literals, want 2", len(lits))
	}
	if len(f) != 0 {
		t.Errorf("formula has %d clauses, want 0", len(f))
	}
}
