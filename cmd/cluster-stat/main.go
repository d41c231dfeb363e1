package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/docopt/docopt-go"
	"go.uber.org/zap"

	"github.com/wooki-hpc/wsge/internal/logging"
	"github.com/wooki-hpc/wsge/sge"
	"github.com/wooki-hpc/wsge/view"
)

const usage = `Show a per-node usage grid for the whole cluster.

Usage:
  cluster_stat [options]

Options:
  -u, --user=<regex>  Comma separated owner patterns to highlight.
  -n, --no-colour     Disable ANSI colours.
  -h, --help          Show this help.
`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		panic(err)
	}

	log := logging.New(os.Getenv("WSGE_LOG"))
	defer log.Sync()

	if err := run(opts, log); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(opts docopt.Opts, log *zap.SugaredLogger) error {
	noColour, _ := opts.Bool("--no-colour")

	users, err := compilePatterns(opts["--user"])
	if err != nil {
		return err
	}

	pal := view.NewPalette(!noColour)
	runner := sge.NewRunner(log)

	snap, err := sge.Qstatf(runner)
	if err != nil {
		return err
	}

	view.Grid(os.Stdout, snap.Nodes, users, pal)
	fmt.Println()
	view.UserTable(os.Stdout, view.SummarizeUsers(snap.Jobs), pal)

	return nil
}

func compilePatterns(opt interface{}) ([]*regexp.Regexp, error) {
	s, ok := opt.(string)
	if !ok || s == "" {
		return nil, nil
	}

	patterns := []*regexp.Regexp{}
	for _, part := range strings.Split(s, ",") {
		re, err := regexp.Compile(part)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, re)
	}

	return patterns, nil
}
