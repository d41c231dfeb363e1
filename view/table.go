package view

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/wooki-hpc/wsge/sge"
)

const tableTimeLayout = "2006-01-02 15:04:05"

// JobTable prints jobs as a flat table ordered by descending priority,
// job number as a tiebreak. Column widths follow the data.
func JobTable(w io.Writer, jobs []sge.Job, pal *Palette) {
	sorted := make([]sge.Job, len(jobs))
	copy(sorted, jobs)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].Number < sorted[j].Number
	})

	wID := len("job-ID")
	wName := len("name")
	wOwner := len("user")
	wQueue := len("queue")

	for _, job := range sorted {
		wID = maxInt(wID, len(strconv.Itoa(job.Number)))
		wName = maxInt(wName, len(job.Name))
		wOwner = maxInt(wOwner, len(job.Owner))
		wQueue = maxInt(wQueue, len(job.Queue))
	}

	fmt.Fprintf(w, "%*s %7s %-*s %-*s %-5s %-19s %5s %-*s %s\n",
		wID, "job-ID", "prior", wName, "name", wOwner, "user",
		"state", "submit/start at", "slots", wQueue, "queue", "tasks")
	fmt.Fprintln(w, strings.Repeat("-", wID+wName+wOwner+wQueue+48))

	for _, job := range sorted {
		owner := pal.Paint(job.Owner, fmt.Sprintf("%-*s", wOwner, job.Owner))

		at := ""
		if !job.DisplayTime().IsZero() {
			at = job.DisplayTime().Format(tableTimeLayout)
		}

		fmt.Fprintf(w, "%*d %7.5f %-*s %s %-5s %-19s %5d %-*s %s\n",
			wID, job.Number, job.Priority, wName, job.Name, owner,
			job.State, at, job.Slots, wQueue, job.Queue, job.Tasks)
	}
}

// FullView prints a per-node breakdown with slot and memory meters and
// per-job lines, followed by any waiting jobs. The queue pattern
// selects queue instances; the user patterns select job lines.
func FullView(w io.Writer, snap *sge.Snapshot, users []*regexp.Regexp, queue *regexp.Regexp, pal *Palette) {
	nodes := SortNodes(snap.Nodes)

	nameW := 0
	ownerW := 0
	for _, node := range nodes {
		nameW = maxInt(nameW, len(node.Name))
	}
	for _, job := range snap.Jobs {
		ownerW = maxInt(ownerW, len(job.Owner))
	}

	for _, node := range nodes {
		if queue != nil && !queue.MatchString(node.Queue) {
			continue
		}

		fmt.Fprintln(w, nodeHeader(node, nameW, users, pal))

		for _, job := range node.Jobs {
			if !MatchUser(users, job.Owner) {
				continue
			}

			owner := pal.Paint(job.Owner, fmt.Sprintf("%-*s", ownerW, job.Owner))
			at := ""
			if !job.DisplayTime().IsZero() {
				at = job.DisplayTime().Format(tableTimeLayout)
			}

			fmt.Fprintf(w, "    %8d %7.5f %s %-5s %-19s %4d %s\n",
				job.Number, job.Priority, owner, job.State, at, job.Slots, job.Name)
		}
	}

	waiting := []sge.Job{}
	for _, job := range snap.Jobs {
		if job.Node == "" && MatchUser(users, job.Owner) {
			waiting = append(waiting, job)
		}
	}

	if len(waiting) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "WAITING JOBS")
		JobTable(w, waiting, pal)
	}
}

// nodeHeader renders one node's summary line: name, state letters, a
// per-owner slot meter and, when the node reports them, load average
// and a memory meter.
func nodeHeader(node sge.Node, nameW int, users []*regexp.Regexp, pal *Palette) string {
	var b strings.Builder

	state := pal.Dim(fmt.Sprintf("%-3s", node.State))
	fmt.Fprintf(&b, "%-*s %s [%s] %2d/%2d",
		nameW, node.Name, state,
		slotMarks(node, node.SlotsTotal, users, pal),
		usedSlots(node), node.SlotsTotal)

	if load, ok := node.Resources["load_avg"]; ok {
		fmt.Fprintf(&b, "  load %6s", load)
	}

	memUsed, uok := node.Resources["mem_used"]
	memTotal, tok := node.Resources["mem_total"]
	if uok && tok {
		used, uerr := sge.ParseSize(memUsed)
		total, terr := sge.ParseSize(memTotal)
		if uerr == nil && terr == nil {
			fmt.Fprintf(&b, "  mem %s %s/%s", Bar(used, total, 10), memUsed, memTotal)
		}
	}

	return b.String()
}

func usedSlots(node sge.Node) int {
	used := 0
	for _, job := range node.Jobs {
		used += job.Slots
	}
	if used > node.SlotsTotal {
		used = node.SlotsTotal
	}
	return used
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
