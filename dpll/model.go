package dpll

import (
	"strings"

	"github.com/signadot/adpll/cnf"
)

// Provenance records where a trail entry came from.  Backjumps are
// done in terms of literals arising from decisions, so the trail has
// to remember which entries those are.
type Provenance int8

const (
	Decision Provenance = iota
	UnitPropagation
	TheoryPropagation
	Backjump
)

func (p Provenance) String() string {
	switch p {
	case Decision:
		return "decision"
	case UnitPropagation:
		return "unit propagation"
	case TheoryPropagation:
		return "theory propagation"
	case Backjump:
		return "backjump"
	default:
		panic("provenance")
	}
}

// An Entry is a literal on the trail together with its provenance.
type Entry struct {
	Lit  cnf.Literal
	From Provenance
}

// A Model is a partial truth assignment: the ordered sequence of
// literals asserted so far.  Order matters because backjumping pops
// entries from the tail.
type Model struct {
	entries []Entry
}

// Append pushes a literal onto the trail.  No consistency check is
// performed here; conflicts surface through formula evaluation.
func (m *Model) Append(lit cnf.Literal, from Provenance) {
	m.entries = append(m.entries, Entry{Lit: lit, From: from})
}

// Contains reports whether the trail holds lit, sign included.  It
// satisfies cnf.Assignment.
func (m *Model) Contains(lit cnf.Literal) bool {
	for _, e := range m.entries {
		if e.Lit == lit {
			return true
		}
	}
	return false
}

// Assignments returns the trail's literals in order, discarding the
// provenance information.
func (m *Model) Assignments() []cnf.Literal {
	lits := make([]cnf.Literal, len(m.entries))
	for i, e := range m.entries {
		lits[i] = e.Lit
	}
	return lits
}

// Entries returns the trail entries in order.
func (m *Model) Entries() []Entry {
	return m.entries
}

// Len returns the number of entries on the trail.
func (m *Model) Len() int {
	return len(m.entries)
}

// Consistent reports whether no atom appears on the trail in both
// polarities.
func (m *Model) Consistent() bool {
	pos := map[int]bool{}
	neg := map[int]bool{}
	for _, e := range m.entries {
		if e.Lit.Negated() {
			neg[e.Lit.ID()] = true
		} else {
			pos[e.Lit.ID()] = true
		}
	}
	for id := range pos {
		if neg[id] {
			return false
		}
	}
	return true
}

// popToLastDecision pops entries from the tail until, and including,
// the most recent decision, returning that decision's literal.  It
// reports false if the trail holds no decision.
func (m *Model) popToLastDecision() (cnf.Literal, bool) {
	for len(m.entries) > 0 {
		e := m.entries[len(m.entries)-1]
		m.entries = m.entries[:len(m.entries)-1]
		if e.From == Decision {
			return e.Lit, true
		}
	}
	return 0, false
}

func (m *Model) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range m.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		if e.From == Decision {
			sb.WriteString("| ")
		}
		sb.WriteString(e.Lit.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
