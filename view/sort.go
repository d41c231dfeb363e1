package view

import (
	"sort"
	"strings"

	"github.com/wooki-hpc/wsge/sge"
)

// CompareNatural orders strings with embedded numbers numerically, so
// that node2 sorts before node10.
func CompareNatural(a, b string) int {
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			ia, ja := i, j
			for ia < len(a) && isDigit(a[ia]) {
				ia++
			}
			for ja < len(b) && isDigit(b[ja]) {
				ja++
			}

			na := strings.TrimLeft(a[i:ia], "0")
			nb := strings.TrimLeft(b[j:ja], "0")

			if len(na) != len(nb) {
				return len(na) - len(nb)
			}
			if na != nb {
				return strings.Compare(na, nb)
			}

			i, j = ia, ja
			continue
		}

		if a[i] != b[j] {
			return int(a[i]) - int(b[j])
		}
		i++
		j++
	}

	return (len(a) - i) - (len(b) - j)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// SortNodes returns the nodes in natural name order, leaving the input
// untouched.
func SortNodes(nodes []sge.Node) []sge.Node {
	sorted := make([]sge.Node, len(nodes))
	copy(sorted, nodes)

	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareNatural(sorted[i].Name, sorted[j].Name) < 0
	})

	return sorted
}
