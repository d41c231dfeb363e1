// Package view renders job and queue records for the terminal. All
// renderers write to an io.Writer and keep no state beyond the color
// palette handed to them.
package view

import "github.com/gdamore/tcell"

const ansiReset = "\x1b[0m"
const ansiDim = "\x1b[90m"

var paletteCodes = []string{
	"\x1b[31m", // red
	"\x1b[32m", // green
	"\x1b[33m", // yellow
	"\x1b[34m", // blue
	"\x1b[35m", // magenta
	"\x1b[36m", // cyan
	"\x1b[91m", // bright red
	"\x1b[92m", // bright green
	"\x1b[93m", // bright yellow
	"\x1b[94m", // bright blue
	"\x1b[95m", // bright magenta
	"\x1b[96m", // bright cyan
}

var paletteColors = []tcell.Color{
	tcell.ColorMaroon,
	tcell.ColorGreen,
	tcell.ColorOlive,
	tcell.ColorNavy,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorRed,
	tcell.ColorLime,
	tcell.ColorYellow,
	tcell.ColorBlue,
	tcell.ColorFuchsia,
	tcell.ColorAqua,
}

// A Palette assigns each username a stable display color in first-seen
// order, cycling when the colors run out. It lives for one process run.
type Palette struct {
	enabled bool
	byUser  map[string]int
}

// NewPalette returns a Palette. A disabled palette still assigns slots
// but paints nothing.
func NewPalette(enabled bool) *Palette {
	return &Palette{
		enabled: enabled,
		byUser:  map[string]int{},
	}
}

// Index returns the palette slot assigned to user, assigning the next
// free slot on first sight.
func (p *Palette) Index(user string) int {
	i, ok := p.byUser[user]
	if !ok {
		i = len(p.byUser)
		p.byUser[user] = i
	}
	return i
}

// Paint wraps s in the user's color, or returns it unchanged when
// colors are disabled.
func (p *Palette) Paint(user, s string) string {
	i := p.Index(user)
	if !p.enabled || s == "" {
		return s
	}
	return paletteCodes[i%len(paletteCodes)] + s + ansiReset
}

// Color returns the user's color for tcell-based screens.
func (p *Palette) Color(user string) tcell.Color {
	return paletteColors[p.Index(user)%len(paletteColors)]
}

// Dim renders s in gray, for node states and free slot marks.
func (p *Palette) Dim(s string) string {
	if !p.enabled || s == "" {
		return s
	}
	return ansiDim + s + ansiReset
}
