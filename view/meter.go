package view

import "strings"

// Meter returns the number of filled marks for value out of max on a
// bar of the given width. The result is clamped to [0, width].
func Meter(value, max float64, width int) int {
	if max <= 0 || width <= 0 {
		return 0
	}

	n := int(value / max * float64(width))
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return n
}

// Bar renders a bracketed meter like "[|||||.....]".
func Bar(value, max float64, width int) string {
	n := Meter(value, max, width)
	return "[" + strings.Repeat("|", n) + strings.Repeat(".", width-n) + "]"
}
