package theory

import "github.com/signadot/adpll/cnf"

// Empty is the theory with no axioms.  Instantiate this to get a
// plain SAT solver.
type Empty struct{}

func (Empty) Decide(cnf.Literal) cnf.Truth { return cnf.Unknown }

func (Empty) Incorporate(cnf.Literal) {}

func (Empty) Forget() {}
