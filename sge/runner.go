package sge

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// A Runner executes cluster commands and returns their output. Parsers
// take a Runner so that they can be tested against canned output.
type Runner interface {
	// Output runs a command and returns its standard output.
	Output(name string, args ...string) ([]byte, error)

	// Pipe runs a command with stdin fed to it and returns its
	// combined output.
	Pipe(stdin []byte, name string, args ...string) ([]byte, error)
}

type execRunner struct {
	log *zap.SugaredLogger
}

// NewRunner returns a Runner that executes commands found on PATH.
func NewRunner(log *zap.SugaredLogger) Runner {
	return execRunner{log: log}
}

func (r execRunner) Output(name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", name, err)
	}

	r.log.Debugf("Running %s %s.", path, strings.Join(args, " "))

	out, err := exec.Command(path, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	r.log.Debugf("%s returned %d byte(s).", name, len(out))

	return out, nil
}

func (r execRunner) Pipe(stdin []byte, name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", name, err)
	}

	r.log.Debugf("Piping %d byte(s) into %s.", len(stdin), path)

	cmd := exec.Command(path, args...)
	cmd.Stdin = bytes.NewReader(stdin)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("%s: %w", name, err)
	}

	return out, nil
}
