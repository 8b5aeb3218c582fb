// Package cnf provides the value types for formulas in conjunctive
// normal form: literals, clauses, and formulas.
package cnf

import (
	"strconv"
	"strings"
)

// A Literal is either an atom (a positive number) or the negation of
// that atom (a negative number).
type Literal int

// NewLiteral constructs a literal from a signed atom number: positive
// for the atom, negative for its negation.  It panics if atom is zero,
// which encodes no atom.
func NewLiteral(atom int) Literal {
	if atom == 0 {
		panic("cnf: cannot construct a literal numbered zero")
	}
	return Literal(atom)
}

// Negated reports whether the literal is a negated atom.
func (l Literal) Negated() bool {
	return l < 0
}

// Neg negates a literal, with double negation cancelling out.
func (l Literal) Neg() Literal {
	return -l
}

// ID returns the numeric id of the literal's atom.
func (l Literal) ID() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

func (l Literal) String() string {
	return strconv.Itoa(int(l))
}

// A Clause is a disjunction of literals.  Two literals corresponding
// to the same atom, one positive and one negative, can exist in the
// same clause.
type Clause []Literal

// NewClause constructs a clause from numeric literals.
func NewClause(lits ...int) Clause {
	c := make(Clause, 0, len(lits))
	for _, n := range lits {
		c = append(c, NewLiteral(n))
	}
	return c
}

func (c Clause) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, lit := range c {
		if i > 0 {
			sb.WriteString(" || ")
		}
		sb.WriteString(lit.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// A Formula is a conjunction of clauses.
type Formula []Clause

func (f Formula) String() string {
	var sb strings.Builder
	for i, c := range f {
		if i > 0 {
			sb.WriteString(" && ")
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
