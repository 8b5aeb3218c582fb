package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "adpll").
		WithSynopsis("adpll [opts] [sat|euf]").
		WithDescription(description).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

const description = `adpll decides satisfiability modulo a theory.

The input is read from standard input in full before solving.  With
the default theory, sat, the input is a DIMACS CNF formula.  With the
theory euf, the input is a block of equality literals over ground
terms, a line containing "--", and then a DIMACS CNF formula whose
atom i stands for the i-th literal of the block:

  == 1(1 2) 1
  == 1(2) 2(1)
  /= 1 3
  --
  p cnf 3 3
  1 0 2 0 3 0

On a satisfiable input the assignment is printed one literal per
line, in the order the search asserted them, and the exit status is
0.  On an unsatisfiable input "Unsatisfiable!" is printed and the
exit status is 1.  Any error exits with status 254.`
