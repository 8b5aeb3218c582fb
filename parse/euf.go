package parse

import (
	"fmt"

	"github.com/signadot/adpll/cnf"
	"github.com/signadot/adpll/theory/euf"
)

// EUF parses the euf input language: a block of EUF literals, a line
// containing exactly "--", then a DIMACS CNF block.
//
// Each literal line is one of:
//
//	== term term
//	/= term term
//
// where a term is an unsigned integer, or an unsigned integer
// followed by a parenthesized list of terms.  The i-th literal
// (1-indexed) binds propositional atom i.
func EUF(d []byte) ([]euf.Lit, cnf.Formula, error) {
	lines := splitLines(string(d))

	var lits []euf.Lit
	for i, line := range lines {
		if line == "--" {
			formula, err := dimacsLines(lines[i+1:])
			if err != nil {
				return nil, nil, err
			}
			return lits, formula, nil
		}
		lit, err := parseLit(line)
		if err != nil {
			return nil, nil, err
		}
		lits = append(lits, lit)
	}

	// No separator: the whole input was literals and the formula is
	// empty, hence trivially true.
	return lits, nil, nil
}

// parseLit parses a single equality or disequality line.
func parseLit(line string) (euf.Lit, error) {
	s := &scanner{d: []byte(line)}

	c1, ok1 := s.next()
	c2, ok2 := s.next()
	var eq bool
	switch {
	case ok1 && ok2 && c1 == '=' && c2 == '=':
		eq = true
	case ok1 && ok2 && c1 == '/' && c2 == '=':
		eq = false
	case !ok1:
		return euf.Lit{}, fmt.Errorf("%w: %w: unexpected empty line", ErrParse, ErrEqSymbol)
	default:
		got := string([]byte{c1})
		if ok2 {
			got = string([]byte{c1, c2})
		}
		return euf.Lit{}, fmt.Errorf("%w: %w, expected \"==\" or \"/=\" but got %q",
			ErrParse, ErrEqSymbol, got)
	}

	left, err := parseTerm(s)
	if err != nil {
		return euf.Lit{}, err
	}
	right, err := parseTerm(s)
	if err != nil {
		return euf.Lit{}, err
	}

	lit := euf.Eq(left, right)
	if !eq {
		lit = lit.Neg()
	}
	return lit, nil
}

// parseTerm parses an atom or an application.
func parseTerm(s *scanner) (euf.Term, error) {
	s.skipSpaces()

	atom, ok := s.uint()
	if !ok {
		return euf.Term{}, fmt.Errorf("%w: %w", ErrParse, ErrAtom)
	}

	s.skipSpaces()
	if c, ok := s.peek(); !ok || c != '(' {
		return euf.Atom(atom), nil
	}
	s.next()

	params := []euf.Term{}
	for {
		s.skipSpaces()
		c, ok := s.peek()
		if !ok {
			return euf.Term{}, fmt.Errorf("%w: %w", ErrParse, ErrApTerm)
		}
		if c == ')' {
			s.next()
			break
		}
		param, err := parseTerm(s)
		if err != nil {
			return euf.Term{}, err
		}
		params = append(params, param)
	}
	return euf.Ap(atom, params...), nil
}
