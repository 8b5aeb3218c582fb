package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/signadot/adpll/dpll"
)

var provenanceColors = map[dpll.Provenance]func(string, ...any) string{
	dpll.Decision:          color.YellowString,
	dpll.UnitPropagation:   color.GreenString,
	dpll.TheoryPropagation: color.CyanString,
	dpll.Backjump:          color.MagentaString,
}

// printModel writes the assignment one literal per line, in trail
// order.
func printModel(w io.Writer, m *dpll.Model, colorize bool) {
	for _, e := range m.Entries() {
		line := e.Lit.String()
		if colorize {
			line = provenanceColors[e.From]("%s", line)
		}
		fmt.Fprintln(w, line)
	}
}
