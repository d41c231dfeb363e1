// Package sge queries a Grid Engine cluster through its command-line
// tools and parses their XML output into plain records. Nothing is
// cached; every query runs qstat afresh.
package sge

import (
	"strings"
	"time"
)

// A Job contains information of a single batch job, or of one task
// range of an array job.
type Job struct {
	Number     int
	Priority   float64
	Name       string
	Owner      string
	State      string
	StartTime  time.Time
	SubmitTime time.Time
	Slots      int
	Queue      string // queue instance, e.g. "all.q@node12.local"
	Node       string // short node name, empty for pending jobs
	Tasks      string // task range, e.g. "1-10:1"
}

// DisplayTime returns the start time, falling back to the submission
// time for jobs that have not started yet.
func (j Job) DisplayTime() time.Time {
	if j.StartTime.IsZero() {
		return j.SubmitTime
	}
	return j.StartTime
}

// Running reports whether the job occupies slots on a node.
func (j Job) Running() bool {
	return strings.ContainsAny(j.State, "rt")
}

// Held reports whether the job is in a hold state.
func (j Job) Held() bool {
	return strings.Contains(j.State, "h")
}

// Queued reports whether the job is waiting without a hold.
func (j Job) Queued() bool {
	return !j.Held() && !j.Running()
}

// A Node contains information of a compute node. Queue instances that
// share a node are merged into one record.
type Node struct {
	Name       string
	Queue      string // instance name of the first queue seen on the node
	State      string // state letters, e.g. "a", "au", "d"
	Qtype      string
	SlotsTotal int
	SlotsUsed  int
	SlotsResv  int
	Resources  map[string]string
	Jobs       []Job
}

// Down reports whether the node is unusable (unreachable, disabled or
// in error).
func (n Node) Down() bool {
	return strings.ContainsAny(n.State, "duE")
}

// NodeName extracts the short node name from a queue instance name,
// "all.q@node12.local" giving "node12".
func NodeName(queue string) string {
	at := strings.Index(queue, "@")
	if at == -1 {
		return ""
	}
	host := queue[at+1:]
	if dot := strings.Index(host, "."); dot != -1 {
		host = host[:dot]
	}
	return host
}
