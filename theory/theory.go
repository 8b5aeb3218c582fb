// Package theory defines the contract between the search loop and a
// background theory, plus the empty theory.
package theory

import "github.com/signadot/adpll/cnf"

// A Theory is a decision procedure consulted by the search loop.
// The search keeps the theory in sync with its trail: every literal
// appended to the trail is mirrored with Incorporate, and a backjump
// is mirrored with Forget followed by re-incorporation of the
// surviving trail prefix.
type Theory interface {
	// Decide reports what the theory can currently say about lit in
	// isolation, given only the literals incorporated so far:
	// cnf.True or cnf.False when the theory forces a polarity, and
	// cnf.Unknown when it has no opinion.  Decide does not modify
	// the theory's state.
	Decide(lit cnf.Literal) cnf.Truth

	// Incorporate asserts lit into the theory's state.  The caller
	// must not incorporate a literal Decide currently rejects; the
	// search loop upholds this by negating first.
	Incorporate(lit cnf.Literal)

	// Forget drops all incorporated literals, returning the theory
	// to its initial state.
	Forget()
}
