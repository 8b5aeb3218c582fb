package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Trace      bool `cli:"name=trace desc='log search steps to stderr'"`
	Color      bool `cli:"name=color desc='color the assignment by provenance'"`
	NoSimplify bool `cli:"name=no-simplify desc='skip the simplification pre-pass'"`
	Gops       bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	Main *cli.Command
}

// colorize decides whether assignment output gets provenance colors:
// forced by -color, otherwise only on a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
