package sge

import "testing"

func Test_ParseSize_ScalesSuffixes(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"2G", 2 * 1024 * 1024 * 1024},
		{"512M", 512 * 1024 * 1024},
		{"1.5K", 1536},
		{"23.5g", 23.5 * 1024 * 1024 * 1024},
		{"100", 100},
		{"0.04", 0.04},
		{"0", 0},
	}

	for _, test := range tests {
		actual, err := ParseSize(test.input)
		if err != nil {
			t.Fatalf("ParseSize(%q): unexpected error: %s", test.input, err)
		}
		if actual != test.expected {
			t.Errorf("ParseSize(%q): got %g, want %g", test.input, actual, test.expected)
		}
	}
}

func Test_ParseSize_RejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "G", "x2", "1.2.3M"} {
		if _, err := ParseSize(input); err == nil {
			t.Errorf("ParseSize(%q): expected error", input)
		}
	}
}
