package euf

import (
	"fmt"
	"os"

	"github.com/signadot/adpll/debug"
)

// addEquiv records l == r and propagates the equality into the
// superterms of both sides: any superterm rewritten at equal
// parameter positions that also exists in the problem is equated
// with the original.  The existence check keeps the relation inside
// the problem's finite term universe.
func (e *EUF) addEquiv(l, r Term) {
	e.insertEquiv(l, r)
	e.insertEquiv(r, l)
	e.rewriteSuperterms(l, r)
	e.rewriteSuperterms(r, l)
}

func (e *EUF) insertEquiv(l, r Term) {
	m := e.equivs[l.key()]
	if m == nil {
		m = map[string]Term{}
		e.equivs[l.key()] = m
	}
	m[r.key()] = r
}

// rewriteSuperterms equates each superterm of from with its variants
// obtained by substituting to at one or more parameter positions
// holding from, provided the variant is a term of the problem.
func (e *EUF) rewriteSuperterms(from, to Term) {
	for _, super := range e.parents[from.key()] {
		for _, variant := range rewrites(super, from, to) {
			if _, ok := e.known[variant.key()]; !ok {
				continue
			}
			e.addEquiv(super, variant)
		}
	}
}

// rewrites enumerates every term obtained from super by replacing a
// nonempty subset of the parameter positions equal to from with to.
func rewrites(super, from, to Term) []Term {
	var out []Term
	var walk func(i int, prefix []Term, changed bool)
	walk = func(i int, prefix []Term, changed bool) {
		if i == len(super.Params) {
			if changed {
				params := make([]Term, len(prefix))
				copy(params, prefix)
				out = append(out, Term{Atom: super.Atom, Params: params})
			}
			return
		}
		p := super.Params[i]
		if p.Equal(from) {
			walk(i+1, append(prefix, to), true)
		}
		walk(i+1, append(prefix, p), changed)
	}
	walk(0, make([]Term, 0, len(super.Params)), false)
	return out
}

// inferImplicitEqualities closes the equivalence relation under
// congruence: two applications of the same function atom whose
// corresponding parameters are pairwise equal are themselves equal.
// Repeats until no new equality is found.
func (e *EUF) inferImplicitEqualities() {
	for {
		var found [][2]Term
		for _, a := range e.terms {
			if !a.IsAp() {
				continue
			}
			for _, b := range e.terms {
				if !b.IsAp() || a.Equal(b) {
					continue
				}
				if a.Atom != b.Atom || len(a.Params) != len(b.Params) {
					continue
				}
				if e.equal(a, b) {
					continue
				}
				congruent := true
				for i := range a.Params {
					if !e.equal(a.Params[i], b.Params[i]) {
						congruent = false
						break
					}
				}
				if congruent {
					found = append(found, [2]Term{a, b})
				}
			}
		}

		if len(found) == 0 {
			return
		}
		for _, pair := range found {
			if debug.Theory() {
				fmt.Fprintf(os.Stderr, "[DEBUG] euf: inferred %s == %s\n", pair[0], pair[1])
			}
			e.addEquiv(pair[0], pair[1])
		}
	}
}

// equal reports whether a path of asserted equalities connects l and
// r.
func (e *EUF) equal(l, r Term) bool {
	if l.Equal(r) {
		return true
	}

	seen := map[string]bool{}
	todo := []Term{l}
	for len(todo) > 0 {
		next := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for k, candidate := range e.equivs[next.key()] {
			if seen[k] {
				continue
			}
			if candidate.Equal(r) {
				return true
			}
			todo = append(todo, candidate)
		}
		seen[next.key()] = true
	}
	return false
}

// unequal reports whether some asserted disequality separates l and
// r: a pair (x, y) with l equal to one side and r to the other.
func (e *EUF) unequal(l, r Term) bool {
	if l.Equal(r) {
		return false
	}

	for _, ie := range e.inequivs {
		if (e.equal(l, ie.l) && e.equal(r, ie.r)) ||
			(e.equal(l, ie.r) && e.equal(r, ie.l)) {
			return true
		}
	}
	return false
}
