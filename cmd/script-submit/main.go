package main

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"go.uber.org/zap"

	"github.com/wooki-hpc/wsge/internal/logging"
	"github.com/wooki-hpc/wsge/sge"
	"github.com/wooki-hpc/wsge/submit"
)

const usage = `Generate a Grid Engine submission script and hand it to qsub.

Usage:
  script-submit [options]

Options:
  -N, --job-name=<name>  Name of the job. [default: job]
  -n, --ncpu=<n>         Number of CPU slots. [default: 1]
  -p, --parallel=<mode>  Parallel mode, smp or mpi. [default: smp]
  -i, --infiniband       Use the InfiniBand parallel environment.
  -r, --runtime=<time>   Run time limit, seconds or hh:mm:ss. [default: 24:00:00]
  -d, --debug            Print the script instead of submitting it.
  -h, --help             Show this help.
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
	name, _ := opts.String("--job-name")
	ncpu, err := opts.Int("--ncpu")
	if err != nil {
		return fmt.Errorf("bad ncpu: %w", err)
	}
	mode, _ := opts.String("--parallel")
	infiniband, _ := opts.Bool("--infiniband")
	runtime, _ := opts.String("--runtime")
	debug, _ := opts.Bool("--debug")

	script, err := submit.Options{
		JobName:    name,
		NCPU:       ncpu,
		Parallel:   mode,
		Infiniband: infiniband,
		Runtime:    runtime,
	}.Script()
	if err != nil {
		return err
	}

	if debug {
		fmt.Print(script)
		return nil
	}

	out, err := sge.Submit(sge.NewRunner(log), []byte(script))
	fmt.Print(out)

	return err
}
