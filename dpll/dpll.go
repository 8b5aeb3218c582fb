// Package dpll implements the Abstract DPLL Modulo Theories search:
// decision, unit propagation, theory propagation, and chronological
// backjumping over a provenance-tagged trail.
package dpll

import (
	"fmt"
	"io"

	"github.com/signadot/adpll/cnf"
	"github.com/signadot/adpll/theory"
)

// An Option configures a solve.
type Option func(*solver)

// WithTrace makes the solver log every trail extension and backjump
// to w.
func WithTrace(w io.Writer) Option {
	return func(s *solver) {
		s.trace = w
	}
}

type solver struct {
	th      theory.Theory
	formula cnf.Formula
	model   *Model
	trace   io.Writer
}

// Solve searches for a model of formula consistent with th.  It
// returns nil if the formula is unsatisfiable.  The search is
// deterministic: clauses and literals are always visited in input
// order.
func Solve(th theory.Theory, formula cnf.Formula, opts ...Option) *Model {
	s := &solver{
		th:      th,
		formula: formula,
		model:   &Model{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s.run()
}

func (s *solver) run() *Model {
	for {
		switch s.formula.Truth(s.model) {
		case cnf.True:
			return s.model
		case cnf.False:
			if !s.backjump() {
				return nil
			}
		case cnf.Unknown:
			// Theory constraints are applied eagerly, or unit
			// propagation might pick a literal the theory would
			// forbid.
			if lit, ok := s.theoryPropagate(); ok {
				s.assert(lit, TheoryPropagation)
				continue
			}
			if lit, ok := s.unitPropagate(); ok {
				s.assert(lit, UnitPropagation)
				continue
			}
			if lit, ok := s.decide(); ok {
				s.assert(lit, Decision)
				continue
			}
			panic("dpll: neither propagation nor decision applies to an incomplete model")
		}
	}
}

// assert appends lit to the trail and mirrors it into the theory.
func (s *solver) assert(lit cnf.Literal, from Provenance) {
	if s.trace != nil {
		fmt.Fprintf(s.trace, "[TRACE] dpll: assert %s (%s)\n", lit, from)
	}
	s.model.Append(lit, from)
	s.th.Incorporate(lit)
}

// backjump pops the trail through the most recent decision, asserts
// its negation, and rebuilds the theory state from the surviving
// prefix.  It reports false if no decision remains, in which case
// the search is exhausted.
func (s *solver) backjump() bool {
	d, ok := s.model.popToLastDecision()
	if !ok {
		return false
	}
	s.model.Append(d.Neg(), Backjump)
	if s.trace != nil {
		fmt.Fprintf(s.trace, "[TRACE] dpll: backjump %s -> %s, trail %s\n", d, d.Neg(), s.model)
	}
	s.resetTheory()
	return true
}

// resetTheory rebuilds the theory from the trail.  The theory keeps
// no history, so the cheapest correct rollback after a backjump is a
// full replay.
func (s *solver) resetTheory() {
	s.th.Forget()
	for _, e := range s.model.Entries() {
		s.th.Incorporate(e.Lit)
	}
}

// theoryPropagate scans clauses not yet true for an unassigned
// literal whose truth the theory already forces, and returns the
// forced polarity of the first one found.
func (s *solver) theoryPropagate() (cnf.Literal, bool) {
	for _, c := range s.formula {
		if c.Truth(s.model) == cnf.True {
			continue
		}
		for _, lit := range c {
			if lit.Truth(s.model) != cnf.Unknown {
				continue
			}
			switch s.th.Decide(lit) {
			case cnf.True:
				return lit, true
			case cnf.False:
				return lit.Neg(), true
			case cnf.Unknown:
				continue
			}
		}
	}
	return 0, false
}

// unitPropagate finds the first undetermined clause with exactly one
// unassigned literal whose remaining literals are all false, and
// returns that literal.
func (s *solver) unitPropagate() (cnf.Literal, bool) {
	for _, c := range s.formula {
		if c.Truth(s.model) != cnf.Unknown {
			continue
		}
		for _, lit := range c {
			if lit.Truth(s.model) != cnf.Unknown {
				continue
			}
			rest := make(cnf.Clause, 0, len(c))
			for _, l := range c {
				if l != lit {
					rest = append(rest, l)
				}
			}
			if rest.Truth(s.model) == cnf.False {
				return lit, true
			}
		}
	}
	return 0, false
}

// decide picks the first unassigned literal of the first
// undetermined clause, asserted positive.  Deliberately the weakest
// possible heuristic: its determinism makes traces reproducible.
func (s *solver) decide() (cnf.Literal, bool) {
	for _, c := range s.formula {
		if c.Truth(s.model) != cnf.Unknown {
			continue
		}
		for _, lit := range c {
			if lit.Truth(s.model) == cnf.Unknown {
				return cnf.NewLiteral(lit.ID()), true
			}
		}
	}
	return 0, false
}
