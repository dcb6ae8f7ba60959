package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jondoglover/udtube/conllu"

	"github.com/urfave/cli/v2"
)

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse a CoNLL-U file and print its canonical form",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("usage: parse <file>")
			}

			f, err := conllu.Open(c.Args().First())
			if err != nil {
				return err
			}
			defer f.Close()

			first := true
			for {
				s, err := f.Next()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}

				if !first {
					fmt.Fprintln(c.App.Writer)
				}
				fmt.Fprint(c.App.Writer, s.Serialize())
				first = false
			}
		},
	}
}
