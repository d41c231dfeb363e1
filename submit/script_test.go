package submit

import (
	"errors"
	"strings"
	"testing"
)

func Test_ValidRuntime_AcceptsSecondsAndClock(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"3600", true},
		{"0", true},
		{"24:00:00", true},
		{"1:30:00", true},
		{"240:00:00", true},
		{"", false},
		{"24:0:0", false},
		{"24:00", false},
		{"1d", false},
		{"-100", false},
		{"24:00:00 ", false},
	}

	for _, test := range tests {
		if actual := ValidRuntime(test.input); actual != test.expected {
			t.Errorf("ValidRuntime(%q): got %t, want %t", test.input, actual, test.expected)
		}
	}
}

func Test_PE_DerivesEnvironment(t *testing.T) {
	tests := []struct {
		ncpu       int
		mode       string
		infiniband bool
		expected   string
	}{
		{1, "smp", false, ""},
		{1, "mpi", true, ""},
		{4, "smp", false, "smp 4"},
		{8, "mpi", false, "ompi 8"},
		{8, "mpi", true, "ompi-ib 8"},
	}

	for _, test := range tests {
		actual, err := PE(test.ncpu, test.mode, test.infiniband)
		if err != nil {
			t.Fatalf("PE(%d, %q, %t): unexpected error: %s",
				test.ncpu, test.mode, test.infiniband, err)
		}
		if actual != test.expected {
			t.Errorf("PE(%d, %q, %t): got %q, want %q",
				test.ncpu, test.mode, test.infiniband, actual, test.expected)
		}
	}
}

func Test_PE_RejectsUnknownMode(t *testing.T) {
	if _, err := PE(4, "cuda", false); !errors.Is(err, ErrBadParallel) {
		t.Errorf("unexpected error: %v", err)
	}
}

func Test_Script_RendersDirectives(t *testing.T) {
	opts := Options{
		JobName:  "relax",
		NCPU:     8,
		Parallel: "mpi",
		Runtime:  "24:00:00",
	}

	script, err := opts.Script()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !strings.HasPrefix(script, "#!/bin/bash\n") {
		t.Errorf("missing shebang:\n%s", script)
	}
	for _, want := range []string{
		"#$ -cwd\n",
		"#$ -V\n",
		"#$ -N relax\n",
		"#$ -pe ompi 8\n",
		"#$ -l h_rt=24:00:00\n",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("missing directive %q:\n%s", want, script)
		}
	}
}

func Test_Script_OmitsPEForSerialJobs(t *testing.T) {
	opts := Options{JobName: "one", NCPU: 1, Parallel: "smp", Runtime: "600"}

	script, err := opts.Script()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if strings.Contains(script, "-pe") {
		t.Errorf("serial job requested a PE:\n%s", script)
	}
}

func Test_Script_RejectsBadRuntime(t *testing.T) {
	opts := Options{JobName: "bad", NCPU: 1, Parallel: "smp", Runtime: "soon"}

	if _, err := opts.Script(); !errors.Is(err, ErrBadRuntime) {
		t.Errorf("unexpected error: %v", err)
	}
}
