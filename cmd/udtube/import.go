package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jondoglover/udtube/conllu"
	"github.com/jondoglover/udtube/storage/sqlite/zombiezen"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
)

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import CoNLL-U files into a sqlite corpus",
		ArgsUsage: "<file...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db",
				Usage:    "path of the sqlite corpus database",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("usage: import --db <path> <file...>")
			}

			pool, err := zombiezen.NewPool(c.String("db"))
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := zombiezen.CreateSchemas(pool, "corpus.sql"); err != nil {
				return fmt.Errorf("failed to create corpus tables: %w", err)
			}

			dst := zombiezen.NewStore(pool)
			files := c.Args().Slice()

			uiprogress.Start()
			bar := uiprogress.AddBar(len(files))
			bar.AppendCompleted()
			bar.PrependElapsed()
			bar.AppendFunc(func(b *uiprogress.Bar) string {
				i := b.Current() - 1
				if i < 0 || i >= len(files) {
					return ""
				}
				return filepath.Base(files[i])
			})

			count := 0
			for _, path := range files {
				sentences, err := readTreebank(path)
				if err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to read %s: %w", path, err)
				}

				if err := dst.Write(filepath.Base(path), sentences); err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				count += len(sentences)
				bar.Incr()
			}
			uiprogress.Stop()

			fmt.Fprintf(c.App.Writer, "Imported %d sentences from %d files into %s\n",
				count, len(files), c.String("db"))
			return nil
		},
	}
}

func readTreebank(path string) ([]conllu.Sentence, error) {
	f, err := conllu.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sentences []conllu.Sentence
	for {
		s, err := f.Next()
		if errors.Is(err, io.EOF) {
			return sentences, nil
		}
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, s)
	}
}
