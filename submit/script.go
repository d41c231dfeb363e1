// Package submit generates Grid Engine submission scripts.
package submit

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

var (
	// ErrBadRuntime rejects run time limits that are neither a plain
	// second count nor hh:mm:ss.
	ErrBadRuntime = errors.New("runtime must be seconds or hh:mm:ss")

	// ErrBadParallel rejects unknown parallelism modes.
	ErrBadParallel = errors.New("unknown parallel mode")
)

var (
	runtimeSeconds = regexp.MustCompile(`^[0-9]+$`)
	runtimeClock   = regexp.MustCompile(`^[0-9]+:[0-9][0-9]:[0-9][0-9]$`)
)

// Options collects everything needed to build a submission script.
type Options struct {
	JobName    string
	NCPU       int
	Parallel   string // "smp" or "mpi"
	Infiniband bool
	Runtime    string
}

// ValidRuntime reports whether s is an acceptable h_rt value: a plain
// second count or hh:mm:ss.
func ValidRuntime(s string) bool {
	return runtimeSeconds.MatchString(s) || runtimeClock.MatchString(s)
}

// PE derives the parallel environment request from the CPU count and
// parallelism mode. Single-CPU jobs request no PE. MPI jobs use the
// ompi environment, or ompi-ib when the InfiniBand fabric is asked for.
func PE(ncpu int, mode string, infiniband bool) (string, error) {
	if ncpu <= 1 {
		return "", nil
	}

	switch mode {
	case "smp":
		return fmt.Sprintf("smp %d", ncpu), nil

	case "mpi":
		pe := "ompi"
		if infiniband {
			pe = "ompi-ib"
		}
		return fmt.Sprintf("%s %d", pe, ncpu), nil
	}

	return "", fmt.Errorf("%w: %q", ErrBadParallel, mode)
}

var scriptTemplate = template.Must(template.New("script").Parse(`#!/bin/bash
#$ -cwd
#$ -V
#$ -N {{.JobName}}
{{- if .PE}}
#$ -pe {{.PE}}
{{- end}}
#$ -l h_rt={{.Runtime}}

# ---- commands run by the job start here ----

echo "{{.JobName}} running on $(hostname) with {{.NCPU}} slot(s)"
`))

// Script renders the submission script for the options. Validation
// failures come back as ErrBadRuntime or ErrBadParallel.
func (o Options) Script() (string, error) {
	if !ValidRuntime(o.Runtime) {
		return "", fmt.Errorf("%w: %q", ErrBadRuntime, o.Runtime)
	}

	pe, err := PE(o.NCPU, o.Parallel, o.Infiniband)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	err = scriptTemplate.Execute(&b, struct {
		Options
		PE string
	}{o, pe})
	if err != nil {
		return "", err
	}

	return b.String(), nil
}
