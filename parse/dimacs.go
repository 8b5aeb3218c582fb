package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/adpll/cnf"
)

// Dimacs parses DIMACS CNF text into a formula.
//
// The format is line oriented: comment lines start with "c", a
// single prelude line reads "p cnf <nvars> <nclauses>", and clause
// lines are signed decimal literals terminated by 0.  Clauses may
// straddle line boundaries.
func Dimacs(d []byte) (cnf.Formula, error) {
	return dimacsLines(splitLines(string(d)))
}

// splitLines splits on newlines without yielding a final empty line
// for trailing (or missing) input.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func dimacsLines(lines []string) (cnf.Formula, error) {
	var (
		inPrelude       = true
		expectedVars    = 0
		expectedClauses = 0
		clause          cnf.Clause
		clauses         cnf.Formula
		variables       = 0
	)

outer:
	for _, line := range lines {
		words := strings.Fields(line)
		if inPrelude {
			if len(words) == 0 {
				return nil, fmt.Errorf("%w: %w %q", ErrParse, ErrPrelude, line)
			}
			switch words[0] {
			case "c":
				continue
			case "p":
				if len(words) < 4 {
					return nil, fmt.Errorf("%w: %w %q", ErrParse, ErrPrelude, line)
				}
				if words[1] != "cnf" {
					return nil, fmt.Errorf("%w: %w %q", ErrParse, ErrFormat, words[1])
				}
				numVars, err := strconv.Atoi(words[2])
				if err != nil || numVars < 0 {
					return nil, fmt.Errorf("%w: %w %q", ErrParse, ErrPrelude, line)
				}
				numClauses, err := strconv.Atoi(words[3])
				if err != nil || numClauses < 0 {
					return nil, fmt.Errorf("%w: %w %q", ErrParse, ErrPrelude, line)
				}
				expectedVars = numVars
				expectedClauses = numClauses
				inPrelude = false
			default:
				return nil, fmt.Errorf("%w: %w %q", ErrParse, ErrPrelude, line)
			}
			continue
		}

		for _, word := range words {
			n, err := strconv.Atoi(word)
			if err != nil {
				return nil, fmt.Errorf("%w: %w %q", ErrParse, ErrClause, line)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				if len(clauses) == expectedClauses {
					break outer
				}
				clause = nil
				continue
			}
			if v := abs(n); v > variables {
				variables = v
			}
			clause = append(clause, cnf.NewLiteral(n))
		}
	}

	if variables > expectedVars {
		return nil, fmt.Errorf("%w: %w, expected at most %d but got %d",
			ErrParse, ErrVarCount, expectedVars, variables)
	}
	if len(clauses) != expectedClauses {
		return nil, fmt.Errorf("%w: %w, expected %d but got %d",
			ErrParse, ErrClauseCount, expectedClauses, len(clauses))
	}
	return clauses, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
