package view

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/wooki-hpc/wsge/sge"
)

// Grid cells are packed into rows of this many character columns.
const gridWidth = 80

// Grid prints one bracketed slot bar per node, packed into a fixed
// width grid. Each used slot renders as a mark in its owner's color;
// marks of owners outside the user patterns render dim, free slots as
// dots. Node state letters follow the bar.
func Grid(w io.Writer, nodes []sge.Node, users []*regexp.Regexp, pal *Palette) {
	sorted := SortNodes(nodes)
	if len(sorted) == 0 {
		return
	}

	nameW, stateW, slotMax := 0, 0, 0
	for _, node := range sorted {
		nameW = maxInt(nameW, len(node.Name))
		stateW = maxInt(stateW, len(node.State))
		slotMax = maxInt(slotMax, node.SlotsTotal)
	}

	cellW := nameW + 1 + slotMax + 2 + stateW
	perRow := (gridWidth + 2) / (cellW + 2)
	if perRow < 1 {
		perRow = 1
	}

	for i, node := range sorted {
		fmt.Fprint(w, gridCell(node, nameW, stateW, slotMax, users, pal))

		if (i+1)%perRow == 0 || i == len(sorted)-1 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, "  ")
		}
	}
}

func gridCell(node sge.Node, nameW, stateW, slotMax int, users []*regexp.Regexp, pal *Palette) string {
	marks := slotMarks(node, node.SlotsTotal, users, pal)
	pad := strings.Repeat(" ", slotMax-node.SlotsTotal)
	state := pal.Dim(fmt.Sprintf("%-*s", stateW, node.State))

	return fmt.Sprintf("%-*s [%s]%s%s", nameW, node.Name, marks, pad, state)
}

// slotMarks renders width slot marks for the node: one "|" per slot
// occupied by a job, painted per owner, then dots for the rest.
// Oversubscribed nodes clamp at width marks.
func slotMarks(node sge.Node, width int, users []*regexp.Regexp, pal *Palette) string {
	var b strings.Builder

	used := 0
	for _, job := range node.Jobs {
		n := job.Slots
		if used+n > width {
			n = width - used
		}
		if n <= 0 {
			break
		}

		s := strings.Repeat("|", n)
		if MatchUser(users, job.Owner) {
			b.WriteString(pal.Paint(job.Owner, s))
		} else {
			b.WriteString(pal.Dim(s))
		}
		used += n
	}

	b.WriteString(pal.Dim(strings.Repeat(".", width-used)))

	return b.String()
}

// UserTable prints per-user job counts: running, queued, held, and
// total occupied slots. Usernames keep their grid colors.
func UserTable(w io.Writer, sums []UserSummary, pal *Palette) {
	nameW := len("USER")
	for _, sum := range sums {
		nameW = maxInt(nameW, len(sum.Name))
	}

	fmt.Fprintf(w, "%-*s %5s %5s %5s %5s\n", nameW, "USER", "RUN", "QUEUE", "HOLD", "SLOTS")

	for _, sum := range sums {
		name := pal.Paint(sum.Name, fmt.Sprintf("%-*s", nameW, sum.Name))
		fmt.Fprintf(w, "%s %5d %5d %5d %5d\n", name, sum.Running, sum.Queued, sum.Held, sum.Slots)
	}
}
