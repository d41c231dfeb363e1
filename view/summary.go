package view

import (
	"sort"

	"github.com/wooki-hpc/wsge/sge"
)

// A UserSummary aggregates one user's jobs for the summary table.
type UserSummary struct {
	Name    string
	Running int
	Queued  int
	Held    int
	Slots   int
}

// SummarizeUsers counts running, queued and held jobs per owner, in
// descending order of occupied slots, name as a tiebreak.
func SummarizeUsers(jobs []sge.Job) []UserSummary {
	index := map[string]int{}
	sums := []UserSummary{}

	for _, job := range jobs {
		i, ok := index[job.Owner]
		if !ok {
			i = len(sums)
			index[job.Owner] = i
			sums = append(sums, UserSummary{Name: job.Owner})
		}

		switch {
		case job.Held():
			sums[i].Held++
		case job.Running():
			sums[i].Running++
			sums[i].Slots += job.Slots
		default:
			sums[i].Queued++
		}
	}

	sort.SliceStable(sums, func(i, j int) bool {
		if sums[i].Slots != sums[j].Slots {
			return sums[i].Slots > sums[j].Slots
		}
		return sums[i].Name < sums[j].Name
	})

	return sums
}

// A ClusterSummary holds whole-cluster totals.
type ClusterSummary struct {
	RunningJobs int
	WaitingJobs int
	UsedSlots   int
	FreeSlots   int
}

// SummarizeCluster totals jobs and slots over the cluster. Slots on
// down nodes do not count as free.
func SummarizeCluster(nodes []sge.Node, jobs []sge.Job) ClusterSummary {
	var sum ClusterSummary

	availSlots := 0
	for _, node := range nodes {
		if !node.Down() {
			availSlots += node.SlotsTotal
		}
	}

	for _, job := range jobs {
		if job.Running() {
			sum.RunningJobs++
			sum.UsedSlots += job.Slots
		} else {
			sum.WaitingJobs++
		}
	}

	sum.FreeSlots = availSlots - sum.UsedSlots
	if sum.FreeSlots < 0 {
		sum.FreeSlots = 0
	}

	return sum
}
