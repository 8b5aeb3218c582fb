package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/signadot/adpll/cnf"
	"github.com/signadot/adpll/debug"
	"github.com/signadot/adpll/dpll"
	"github.com/signadot/adpll/parse"
	"github.com/signadot/adpll/theory"
	"github.com/signadot/adpll/theory/euf"
)

const (
	exitSat   = 0
	exitUnsat = 1
	exitError = 254
)

func run(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(exitError)
	}
	theoryName := "sat"
	if len(args) > 0 {
		theoryName = args[0]
	}

	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		}
	}

	in, err := io.ReadAll(cc.In)
	if err != nil {
		return die("Failed to read input:", err, "")
	}
	return solve(cfg, cc.Out, theoryName, in)
}

// solve parses the input for the named theory, searches, and prints
// the verdict.  The returned error carries the process exit status.
func solve(cfg *MainConfig, w io.Writer, theoryName string, in []byte) error {
	var (
		th      theory.Theory
		formula cnf.Formula
	)
	switch theoryName {
	case "sat":
		f, err := parse.Dimacs(in)
		if err != nil {
			return die("Failed to parse input:", err, "")
		}
		if !cfg.NoSimplify {
			f = dpll.Simplify(f)
		}
		th, formula = theory.Empty{}, f
	case "euf":
		// The simplification pre-pass is not run here: the theory
		// binding is positional over atoms of the input formula.
		lits, f, err := parse.EUF(in)
		if err != nil {
			return die("Failed to parse input:", err, "")
		}
		th, formula = euf.New(lits), f
	default:
		return die("Unknown theory:", fmt.Errorf("%q", theoryName), "Expected 'sat' or 'euf'")
	}

	var opts []dpll.Option
	if cfg.Trace || debug.Solve() {
		opts = append(opts, dpll.WithTrace(os.Stderr))
	}

	m := dpll.Solve(th, formula, opts...)
	if m == nil {
		fmt.Fprintln(w, "Unsatisfiable!")
		return cli.ExitCodeErr(exitUnsat)
	}
	printModel(w, m, cfg.colorize(w))
	return nil
}

func die(msg string, err error, hint string) error {
	fmt.Fprintln(os.Stderr, msg)
	fmt.Fprintf(os.Stderr, "    %v\n", err)
	if hint != "" {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, hint)
	}
	return cli.ExitCodeErr(exitError)
}
