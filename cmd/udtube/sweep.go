package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jondoglover/udtube/sweep"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func sweepCommand() *cli.Command {
	return &cli.Command{
		Name:      "sweep",
		Usage:     "run a hyperparameter sweep over a training command",
		ArgsUsage: "-- <command...>",
		Description: "Runs the training command once per parameter set. The populated\n" +
			"config path replaces " + sweep.ConfigPlaceholder + " in the command, or is\n" +
			"appended as a trailing --config flag.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Usage:    "base experiment config (YAML)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "sweep",
				Usage:    "sweep definition (YAML)",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "number of runs to perform (0 = sweep default)",
			},
			&cli.StringFlag{
				Name:  "out",
				Value: "runs.jsonl",
				Usage: "JSON-lines run log",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for random search",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("no training command given, expected: sweep [flags] -- <command...>")
			}

			base, err := sweep.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}
			spec, err := sweep.LoadSpec(c.String("sweep"))
			if err != nil {
				return err
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()

			agent := sweep.NewAgent(base, spec, c.Args().Slice())
			agent.Results = c.String("out")
			agent.Log = logger
			if c.IsSet("seed") {
				agent.Rand = rand.New(rand.NewSource(c.Int64("seed")))
			}

			results, err := agent.Run(c.Context, c.Int("count"))
			if err != nil {
				return err
			}

			failed := 0
			for _, res := range results {
				if res.ExitCode != 0 {
					failed++
				}
			}
			fmt.Fprintf(c.App.Writer, "Sweep finished: %d runs, %d failed\n", len(results), failed)
			return nil
		},
	}
}
