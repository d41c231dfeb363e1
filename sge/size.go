package sge

import (
	"errors"
	"strconv"
)

var errEmptySize = errors.New("empty size")

// ParseSize parses a Grid Engine byte quantity such as "512M" or
// "23.5G". The K, M, G and T suffixes scale by powers of 1024, in
// either case; a bare number passes through unscaled.
func ParseSize(s string) (float64, error) {
	if s == "" {
		return 0, errEmptySize
	}

	scale := 1.0

	switch s[len(s)-1] {
	case 'K', 'k':
		scale = 1 << 10
	case 'M', 'm':
		scale = 1 << 20
	case 'G', 'g':
		scale = 1 << 30
	case 'T', 't':
		scale = 1 << 40
	}

	if scale != 1 {
		s = s[:len(s)-1]
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	return n * scale, nil
}
