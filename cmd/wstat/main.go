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

const usage = `Show Grid Engine job status.

Usage:
  wstat [options]

Options:
  -u, --user=<regex>   Comma separated owner patterns to show.
  -q, --queue=<regex>  Show only queue instances matching the pattern.
  -f, --full           Show the full per-node breakdown.
  -n, --no-colour      Disable ANSI colours.
  -h, --help           Show this help.
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
	full, _ := opts.Bool("--full")
	noColour, _ := opts.Bool("--no-colour")

	users, err := compilePatterns(opts["--user"])
	if err != nil {
		return err
	}

	var queue *regexp.Regexp
	if s, ok := opts["--queue"].(string); ok && s != "" {
		queue, err = regexp.Compile(s)
		if err != nil {
			return err
		}
	}

	pal := view.NewPalette(!noColour)
	runner := sge.NewRunner(log)

	if full {
		snap, err := sge.Qstatf(runner)
		if err != nil {
			return err
		}
		view.FullView(os.Stdout, snap, users, queue, pal)
		return nil
	}

	jobs, err := sge.Qstat(runner)
	if err != nil {
		return err
	}
	view.JobTable(os.Stdout, view.Filter(jobs, users, queue), pal)

	return nil
}

// compilePatterns turns a comma separated pattern list into regexps.
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
