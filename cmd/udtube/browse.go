package main

import (
	"fmt"
	"os"

	"github.com/jondoglover/udtube/browse"
	"github.com/jondoglover/udtube/render"
	"github.com/jondoglover/udtube/storage"
	"github.com/jondoglover/udtube/storage/filesystem"
	"github.com/jondoglover/udtube/storage/sqlite/zombiezen"

	"github.com/urfave/cli/v2"
	"zombiezen.com/go/sqlite/sqlitex"
)

func browseCommand() *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "interactively look up sentences by lemma",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "corpus",
				Usage:    "sqlite corpus database, or a directory of .conllu files",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Action: func(c *cli.Context) error {
			repo, pool, err := newCorpusReader(c.String("corpus"))
			if err != nil {
				return err
			}
			if pool != nil {
				defer pool.Close()
			}

			r := render.NewRenderer()
			r.HasColor = !c.Bool("no-color")

			return browse.NewHandler(repo, r).Run()
		},
	}
}

// newCorpusReader picks the backend by path shape: a directory is read as
// loose .conllu files, anything else as a sqlite database.
func newCorpusReader(path string) (storage.CorpusReader, *sqlitex.Pool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("corpus not found: %s", path)
	}

	if info.IsDir() {
		store, err := filesystem.NewStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, nil, err
	}
	return zombiezen.NewStore(pool), pool, nil
}
