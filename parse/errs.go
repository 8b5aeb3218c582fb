package parse

import (
	"errors"
)

var (
	// ErrParse is the root of all parse failures.
	ErrParse = errors.New("parse error")

	ErrPrelude     = errors.New("cannot parse prelude line")
	ErrFormat      = errors.New("unexpected format")
	ErrClause      = errors.New("cannot parse clause line")
	ErrVarCount    = errors.New("wrong number of variables")
	ErrClauseCount = errors.New("wrong number of clauses")

	ErrEqSymbol = errors.New("cannot parse equality symbol")
	ErrApTerm   = errors.New("unexpected end of application term")
	ErrAtom     = errors.New("cannot parse atom")
)
