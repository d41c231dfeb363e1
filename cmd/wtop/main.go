package main

import (
	"fmt"
	"os"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/gdamore/tcell"

	"github.com/wooki-hpc/wsge/internal/logging"
	"github.com/wooki-hpc/wsge/sge"
	"github.com/wooki-hpc/wsge/wtop"
)

const usage = `Watch Grid Engine cluster usage.

Usage:
  wtop [options]

Options:
  -i, --interval=<sec>  Refresh interval in seconds. [default: 5]
  -h, --help            Show this help.
`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		panic(err)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(opts docopt.Opts) error {
	interval, err := opts.Int("--interval")
	if err != nil || interval < 1 {
		return fmt.Errorf("bad interval")
	}

	log := logging.New(os.Getenv("WSGE_LOG"))
	defer log.Sync()

	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	defer scr.Fini()

	top := wtop.NewTop(sge.NewRunner(log))
	app := wtop.NewApp(top, scr, wtop.Config{
		Interval: time.Duration(interval) * time.Second,
	})

	return app.Start()
}
