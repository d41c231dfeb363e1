package view

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/wooki-hpc/wsge/sge"
)

func plainPalette() *Palette {
	return NewPalette(false)
}

func Test_Grid_RendersSlotBars(t *testing.T) {
	nodes := []sge.Node{
		{
			Name:       "node10",
			SlotsTotal: 4,
			Jobs:       []sge.Job{{Owner: "alice", State: "r", Slots: 4}},
		},
		{
			Name:       "node2",
			State:      "a",
			SlotsTotal: 4,
			Jobs:       []sge.Job{{Owner: "bob", State: "r", Slots: 2}},
		},
	}

	var buf bytes.Buffer
	Grid(&buf, nodes, nil, plainPalette())

	out := buf.String()

	if !strings.Contains(out, "node2  [||..]a") {
		t.Errorf("node2 cell missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, "node10 [||||]") {
		t.Errorf("node10 cell missing or wrong:\n%s", out)
	}

	// natural order puts node2 first
	if strings.Index(out, "node2 ") > strings.Index(out, "node10") {
		t.Errorf("nodes out of order:\n%s", out)
	}
}

func Test_Grid_ClampsOversubscribedNodes(t *testing.T) {
	nodes := []sge.Node{
		{
			Name:       "node1",
			SlotsTotal: 4,
			Jobs: []sge.Job{
				{Owner: "alice", State: "r", Slots: 3},
				{Owner: "bob", State: "r", Slots: 3},
			},
		},
	}

	var buf bytes.Buffer
	Grid(&buf, nodes, nil, plainPalette())

	if !strings.Contains(buf.String(), "[||||]") {
		t.Errorf("bar not clamped to slot count:\n%s", buf.String())
	}
}

func Test_Grid_PaintsUsersAndDimsOthers(t *testing.T) {
	nodes := []sge.Node{
		{
			Name:       "node1",
			SlotsTotal: 4,
			Jobs: []sge.Job{
				{Owner: "alice", State: "r", Slots: 2},
				{Owner: "bob", State: "r", Slots: 2},
			},
		},
	}

	users := []*regexp.Regexp{regexp.MustCompile("^alice$")}

	var buf bytes.Buffer
	Grid(&buf, nodes, users, NewPalette(true))

	out := buf.String()

	if !strings.Contains(out, "\x1b[31m||\x1b[0m") {
		t.Errorf("alice's marks not painted with the first color:\n%q", out)
	}
	if !strings.Contains(out, "\x1b[90m||\x1b[0m") {
		t.Errorf("bob's marks not dimmed:\n%q", out)
	}
}

func Test_UserTable_AlignsCounts(t *testing.T) {
	sums := []UserSummary{
		{Name: "alice", Running: 2, Queued: 1, Held: 0, Slots: 16},
		{Name: "bo", Running: 0, Queued: 5, Held: 2, Slots: 0},
	}

	var buf bytes.Buffer
	UserTable(&buf, sums, plainPalette())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected line count: %d", len(lines))
	}

	if !strings.HasPrefix(lines[0], "USER ") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "alice     2     1     0    16") {
		t.Errorf("unexpected alice row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "bo        0     5     2     0") {
		t.Errorf("unexpected bo row: %q", lines[2])
	}
}
