package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	// BuildTag and BuildCommit are set at build time with -ldflags.
	BuildTag    = "dev"
	BuildCommit = "none"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "udtube: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "udtube",
		Usage: "CoNLL-U corpus tooling and sweep runner",
		Commands: []*cli.Command{
			parseCommand(),
			statCommand(),
			importCommand(),
			browseCommand(),
			sweepCommand(),
			versionCommand(),
		},
	}
}
