package view

import "testing"

func Test_Meter_FillsProportionally(t *testing.T) {
	tests := []struct {
		value    float64
		max      float64
		width    int
		expected int
	}{
		{5, 10, 10, 5},
		{0, 10, 10, 0},
		{10, 10, 10, 10},
		{15, 10, 10, 10}, // clamp high
		{-3, 10, 10, 0},  // clamp low
		{1, 3, 12, 4},
		{5, 0, 10, 0}, // degenerate maximum
		{5, 10, 0, 0}, // degenerate width
	}

	for _, test := range tests {
		actual := Meter(test.value, test.max, test.width)
		if actual != test.expected {
			t.Errorf("Meter(%g, %g, %d): got %d, want %d",
				test.value, test.max, test.width, actual, test.expected)
		}
	}
}

func Test_Bar_RendersMarksAndDots(t *testing.T) {
	if actual := Bar(5, 10, 10); actual != "[|||||.....]" {
		t.Errorf("unexpected bar: %q", actual)
	}
	if actual := Bar(0, 10, 4); actual != "[....]" {
		t.Errorf("unexpected empty bar: %q", actual)
	}
}
