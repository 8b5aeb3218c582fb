package dpll

// Clause elimination per "Clause Elimination Procedures for CNF
// Formulas" - Heule, Jarvisalo, Biere (2010).

import "github.com/signadot/adpll/cnf"

// Simplify removes asymmetric tautologies from a formula.  The pass
// is satisfiability-preserving and optional; the driver runs it only
// when no theory is attached.
func Simplify(formula cnf.Formula) cnf.Formula {
	return asymmetricTautologyElimination(formula)
}

// Asymmetric Tautology Elimination (4.2)
//
// For a clause C and a CNF formula F, ALA(F,C) denotes the unique
// clause resulting from repeating the following until fixpoint: if
// l1, ..., lk in C and there is a clause (l1 || ... || lk || l) in
// F \ {C} for some literal l, let C := C + {!l}.
//
// A clause C is an asymmetric tautology if and only if ALA(F,C) is a
// tautology.  ATE repeats until fixpoint: if there is an asymmetric
// tautological clause C in F, let F := F \ {C}.
func asymmetricTautologyElimination(formula cnf.Formula) cnf.Formula {
	deleted := make([]bool, len(formula))

	for i, c := range formula {
		ala := make(map[cnf.Literal]bool, len(c))
		for _, lit := range c {
			ala[lit] = true
		}
	fixpoint:
		for {
			for j, other := range formula {
				if j == i || deleted[j] {
					continue
				}
				for _, el := range other {
					if ala[el.Neg()] {
						continue
					}
					if !subsetWithout(other, el, ala) {
						continue
					}
					if ala[el] {
						deleted[i] = true
						break fixpoint
					}
					ala[el.Neg()] = true
					continue fixpoint
				}
			}
			break
		}
	}

	out := make(cnf.Formula, 0, len(formula))
	for i, c := range formula {
		if !deleted[i] {
			out = append(out, c)
		}
	}
	return out
}

// subsetWithout reports whether every literal of c other than el is
// a member of set.
func subsetWithout(c cnf.Clause, el cnf.Literal, set map[cnf.Literal]bool) bool {
	for _, lit := range c {
		if lit == el {
			continue
		}
		if !set[lit] {
			return false
		}
	}
	return true
}
