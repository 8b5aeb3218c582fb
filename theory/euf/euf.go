// Package euf implements the theory of equality with uninterpreted
// function symbols.  It decides literals like:
//
//	g(a) = c && (f(g(a)) != f(c) || g(a) = d) && c != d
//
// over ground terms, by maintaining an equivalence relation and a
// disequality set under congruence closure.
package euf

import (
	"fmt"
	"sort"

	"github.com/signadot/adpll/cnf"
)

// EUF is the theory state.  The literal binding and the superterm
// index are fixed at construction; the equivalence relation and the
// disequality set accumulate through Incorporate and are dropped by
// Forget.
type EUF struct {
	lits []Lit

	// terms enumerates every term mentioned in the input literals,
	// ordered by Compare so that iteration is deterministic.
	terms []Term
	// known keys the same set for existence checks.
	known map[string]Term
	// parents maps each term to the application terms in which it
	// occurs as an immediate parameter.
	parents map[string][]Term

	// equivs is the asserted equivalence relation, stored as a
	// symmetric adjacency map.  Transitive closure is computed by
	// graph search in equal, not stored.
	equivs map[string]map[string]Term
	// inequivs records asserted disequalities in assertion order;
	// they are treated symmetrically at query time.
	inequivs []inequiv
}

type inequiv struct {
	l, r Term
}

// New constructs the theory for the given literals.  Propositional
// atom k is bound to lits[k-1]; a negated model literal asserts the
// negated EUF literal.
func New(lits []Lit) *EUF {
	e := &EUF{
		lits:    lits,
		known:   map[string]Term{},
		parents: map[string][]Term{},
		equivs:  map[string]map[string]Term{},
	}
	for _, lit := range lits {
		e.indexTerm(lit.L)
		e.indexTerm(lit.R)
	}
	e.terms = make([]Term, 0, len(e.known))
	for _, t := range e.known {
		e.terms = append(e.terms, t)
	}
	sort.Slice(e.terms, func(i, j int) bool {
		return Compare(e.terms[i], e.terms[j]) < 0
	})
	for _, ps := range e.parents {
		sort.Slice(ps, func(i, j int) bool {
			return Compare(ps[i], ps[j]) < 0
		})
	}
	return e
}

// indexTerm records term and all of its subterms in the superterm
// index.  Every subterm gets an entry, so the key set enumerates all
// terms in the problem.
func (e *EUF) indexTerm(t Term) {
	if _, ok := e.known[t.key()]; !ok {
		e.known[t.key()] = t
	}
	if !t.IsAp() {
		return
	}
	for _, p := range t.Params {
		e.addParent(p, t)
		e.indexTerm(p)
	}
}

func (e *EUF) addParent(p, ap Term) {
	k := p.key()
	for _, have := range e.parents[k] {
		if have.Equal(ap) {
			return
		}
	}
	e.parents[k] = append(e.parents[k], ap)
}

// toLit translates a model literal to the EUF literal it is bound
// to, applying negation.
func (e *EUF) toLit(ml cnf.Literal) Lit {
	lit := e.lits[ml.ID()-1]
	if ml.Negated() {
		return lit.Neg()
	}
	return lit
}

// Decide reports the truth of a model literal under the accumulated
// equalities, if determined.
func (e *EUF) Decide(ml cnf.Literal) cnf.Truth {
	lit := e.toLit(ml)

	if lit.L.Equal(lit.R) {
		if lit.Eq {
			return cnf.True
		}
		return cnf.False
	}

	eq := e.equal(lit.L, lit.R)
	ne := e.unequal(lit.L, lit.R)
	switch {
	case eq && ne:
		panic(fmt.Sprintf("euf: contradiction: %s and %s are both equal and unequal", lit.L, lit.R))
	case !eq && !ne:
		return cnf.Unknown
	case lit.Eq == eq:
		return cnf.True
	default:
		return cnf.False
	}
}

// Incorporate asserts a model literal into the theory state and
// restores congruence closure.
func (e *EUF) Incorporate(ml cnf.Literal) {
	lit := e.toLit(ml)
	if lit.Eq {
		if !lit.L.Equal(lit.R) {
			e.addEquiv(lit.L, lit.R)
		}
	} else {
		if lit.L.Equal(lit.R) {
			panic(fmt.Sprintf("euf: contradiction: %s is not equal to itself", lit.L))
		}
		e.inequivs = append(e.inequivs, inequiv{l: lit.L, r: lit.R})
	}

	e.inferImplicitEqualities()
}

// Forget drops all incorporated literals.  The superterm index and
// the literal binding are preserved.
func (e *EUF) Forget() {
	e.equivs = map[string]map[string]Term{}
	e.inequivs = nil
}
