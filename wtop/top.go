// Package wtop implements the interactive full-screen cluster viewer.
package wtop

import (
	"github.com/wooki-hpc/wsge/sge"
	"github.com/wooki-hpc/wsge/view"
)

// Top polls the cluster and keeps the latest snapshot and its
// summaries for drawing.
type Top struct {
	runner  sge.Runner
	snap    *sge.Snapshot
	cluster view.ClusterSummary
	users   []view.UserSummary
}

// NewTop returns a Top polling through the given runner.
func NewTop(runner sge.Runner) *Top {
	return &Top{runner: runner}
}

// Update fetches a fresh snapshot and recomputes the summaries.
func (top *Top) Update() error {
	snap, err := sge.Qstatf(top.runner)
	if err != nil {
		return err
	}

	top.snap = snap
	top.cluster = view.SummarizeCluster(snap.Nodes, snap.Jobs)
	top.users = view.SummarizeUsers(snap.Jobs)

	return nil
}

// Current returns the snapshot from the last successful Update.
func (top *Top) Current() *sge.Snapshot {
	return top.snap
}
