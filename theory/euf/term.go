package euf

import (
	"cmp"
	"strconv"
	"strings"
)

// A Term is a ground term: an atom, or a function atom applied to
// parameter terms.  Atoms and function atoms with the same number
// live in different namespaces, so 1 and 1() are distinct terms.
type Term struct {
	Atom   int
	Params []Term
}

// Atom constructs an atom term.
func Atom(atom int) Term {
	return Term{Atom: atom}
}

// Ap constructs an application of a function atom to parameters.
func Ap(fn int, params ...Term) Term {
	if params == nil {
		params = []Term{}
	}
	return Term{Atom: fn, Params: params}
}

// IsAp reports whether the term is an application.
func (t Term) IsAp() bool {
	return t.Params != nil
}

// Equal reports structural equality.
func (t Term) Equal(u Term) bool {
	if t.IsAp() != u.IsAp() || t.Atom != u.Atom || len(t.Params) != len(u.Params) {
		return false
	}
	for i := range t.Params {
		if !t.Params[i].Equal(u.Params[i]) {
			return false
		}
	}
	return true
}

// Compare returns an integer comparing two terms.  The result will
// be 0 if a==b, -1 if a < b, and +1 if a > b.  Atoms order before
// applications; applications order by function atom, then by
// parameters.
func Compare(a, b Term) int {
	if a.IsAp() != b.IsAp() {
		if !a.IsAp() {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(a.Atom, b.Atom); c != 0 {
		return c
	}
	for i := range a.Params {
		if i >= len(b.Params) {
			return 1
		}
		if c := Compare(a.Params[i], b.Params[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Params), len(b.Params))
}

// String renders the term in the input grammar: 3, or 1(2 3(4)).
func (t Term) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t Term) write(sb *strings.Builder) {
	sb.WriteString(strconv.Itoa(t.Atom))
	if !t.IsAp() {
		return
	}
	sb.WriteByte('(')
	for i, p := range t.Params {
		if i > 0 {
			sb.WriteByte(' ')
		}
		p.write(sb)
	}
	sb.WriteByte(')')
}

// key is the canonical map key for a term.  The grammar rendering is
// injective: atoms and applications never collide.
func (t Term) key() string {
	return t.String()
}

// A Lit is an (in)equality applied to two terms.
type Lit struct {
	Eq   bool
	L, R Term
}

// Eq constructs an equality literal.
func Eq(l, r Term) Lit {
	return Lit{Eq: true, L: l, R: r}
}

// Ne constructs a disequality literal.
func Ne(l, r Term) Lit {
	return Lit{Eq: false, L: l, R: r}
}

// Neg negates the literal by flipping the equality.
func (l Lit) Neg() Lit {
	l.Eq = !l.Eq
	return l
}

func (l Lit) String() string {
	op := "=="
	if !l.Eq {
		op = "/="
	}
	return op + " " + l.L.String() + " " + l.R.String()
}
