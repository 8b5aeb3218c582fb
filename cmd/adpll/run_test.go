package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/adpll/parse"
)

func runSolve(t *testing.T, theoryName, input string) (string, error) {
	t.Helper()
	cfg := &MainConfig{}
	var out bytes.Buffer
	err := solve(cfg, &out, theoryName, []byte(input))
	return out.String(), err
}

func diffStrings(want, got string) string {
	dmp := diffpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(want, got, false))
}

func TestSolveEndToEnd(t *testing.T) {
	tests := []struct {
		name   string
		theory string
		input  string
		out    string
		err    error
	}{
		{
			"single positive clause",
			"sat",
			"p cnf 1 1\n1 0",
			"1\n",
			nil,
		},
		{
			"contradictory units",
			"sat",
			"p cnf 1 2\n1 0\n-1 0",
			"Unsatisfiable!\n",
			cli.ExitCodeErr(exitUnsat),
		},
		{
			"three clause conflict",
			"sat",
			"p cnf 2 3\n1 0\n2 0\n-1 -2 0",
			"Unsatisfiable!\n",
			cli.ExitCodeErr(exitUnsat),
		},
		{
			"negative assignment",
			"sat",
			"p cnf 2 2\n-1 0\n1 -2 0",
			"-1\n-2\n",
			nil,
		},
		{
			// From 1 and 3, congruence forces a == c, contradicting
			// the clause asserting their disequality.
			"euf congruence conflict",
			"euf",
			"== 1(1 2) 1\n== 1(2) 2(1)\n== 1(1(1 2) 2) 3\n== 1 3\n--\n" +
				"p cnf 4 4\n1 0 2 0 3 0 -4 0",
			"Unsatisfiable!\n",
			cli.ExitCodeErr(exitUnsat),
		},
		{
			// Same bindings, but the last clause is a tautology: the
			// theory propagates atom 4 true.
			"euf congruence propagation",
			"euf",
			"== 1(1 2) 1\n== 1(2) 2(1)\n== 1(1(1 2) 2) 3\n== 1 3\n--\n" +
				"p cnf 4 4\n1 0 2 0 3 0 -4 4 0",
			"1\n2\n3\n4\n",
			nil,
		},
		{
			"unknown theory",
			"smt",
			"",
			"",
			cli.ExitCodeErr(exitError),
		},
		{
			"parse failure",
			"sat",
			"p cnf 1 99\n1 0",
			"",
			cli.ExitCodeErr(exitError),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runSolve(t, tt.theory, tt.input)
			if err != tt.err {
				t.Fatalf("solve() error = %v, want %v", err, tt.err)
			}
			if out != tt.out {
				t.Errorf("output mismatch:\n%s", diffStrings(tt.out, out))
			}
		})
	}
}

// The trail of a larger instance is not pinned down here, but it has
// to satisfy the formula.
func TestSolveComplexSat(t *testing.T) {
	input := "p cnf 7 8\n" +
		"-3 4 0\n-1 -3 -5 0\n-2 -4 -5 0\n-2 3 5 -6 0\n" +
		"-1 2 0\n-1 3 -5 -6 0\n1 -6 0\n1 7 0"
	out, err := runSolve(t, "sat", input)
	if err != nil {
		t.Fatalf("solve() error = %v, want sat", err)
	}

	assigned := map[int]bool{}
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		n, err := strconv.Atoi(line)
		if err != nil {
			t.Fatalf("output line %q is not a literal", line)
		}
		assigned[n] = true
	}

	f, err := parse.Dimacs([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range f {
		ok := false
		for _, lit := range c {
			if assigned[int(lit)] {
				ok = true
				break
			}
		}
		if !ok {
			t.Errorf("clause %s not satisfied by output %q", c, out)
		}
	}
}
