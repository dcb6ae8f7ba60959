package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/jondoglover/udtube/conllu"
	"github.com/jondoglover/udtube/stat"

	"github.com/urfave/cli/v2"
)

func statCommand() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print statistics of a CoNLL-U file",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("usage: stat <file>")
			}

			f, err := conllu.Open(c.Args().First())
			if err != nil {
				return err
			}
			defer f.Close()

			hdl := stat.NewHandler()
			for {
				s, err := f.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}
				hdl.Add(s)
			}

			stats := hdl.Get()
			fmt.Fprintf(c.App.Writer, "Num sentences %d, num tokens %d, tokens per sentence %d\n",
				stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean)

			tags := make([]string, 0, len(stats.UposDis))
			for tag := range stats.UposDis {
				tags = append(tags, tag)
			}
			sort.Strings(tags)
			for _, tag := range tags {
				fmt.Fprintf(c.App.Writer, "%8s %6d\n", tag, stats.UposDis[tag])
			}

			return nil
		},
	}
}
