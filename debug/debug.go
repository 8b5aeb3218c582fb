// Package debug holds env-gated debug switches.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Solve  bool
	Theory bool
}

var d *debug

func init() {
	d = &debug{}
	d.Solve = boolEnv("ADPLL_DEBUG_SOLVE")
	d.Theory = boolEnv("ADPLL_DEBUG_THEORY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Solve gates trace output of the search loop.
func Solve() bool {
	return d.Solve
}

// Theory gates trace output of theory inference.
func Theory() bool {
	return d.Theory
}
