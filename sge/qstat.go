package sge

import (
	"encoding/xml"
	"fmt"
	"time"
)

const timeLayout = "2006-01-02T15:04:05"

// XML elements emitted by qstat -xml. Element names follow the Grid
// Engine schema, so JB_* tags stay as reported.

type jobElem struct {
	Number     int     `xml:"JB_job_number"`
	Priority   float64 `xml:"JAT_prio"`
	Name       string  `xml:"JB_name"`
	Owner      string  `xml:"JB_owner"`
	State      string  `xml:"state"`
	StartTime  string  `xml:"JAT_start_time"`
	SubmitTime string  `xml:"JB_submission_time"`
	Queue      string  `xml:"queue_name"`
	Slots      int     `xml:"slots"`
	Tasks      string  `xml:"tasks"`
}

type resourceElem struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type queueElem struct {
	Name       string         `xml:"name"`
	Qtype      string         `xml:"qtype"`
	SlotsUsed  int            `xml:"slots_used"`
	SlotsResv  int            `xml:"slots_resv"`
	SlotsTotal int            `xml:"slots_total"`
	State      string         `xml:"state"`
	Resources  []resourceElem `xml:"resource"`
	Jobs       []jobElem      `xml:"job_list"`
}

type jobListOutput struct {
	Running []jobElem `xml:"queue_info>job_list"`
	Pending []jobElem `xml:"job_info>job_list"`
}

type fullOutput struct {
	Queues  []queueElem `xml:"queue_info>Queue-List"`
	Pending []jobElem   `xml:"job_info>job_list"`
}

func (el jobElem) job() Job {
	job := Job{
		Number:   el.Number,
		Priority: el.Priority,
		Name:     el.Name,
		Owner:    el.Owner,
		State:    el.State,
		Slots:    el.Slots,
		Queue:    el.Queue,
		Node:     NodeName(el.Queue),
		Tasks:    el.Tasks,
	}

	if t, err := time.Parse(timeLayout, el.StartTime); err == nil {
		job.StartTime = t
	}
	if t, err := time.Parse(timeLayout, el.SubmitTime); err == nil {
		job.SubmitTime = t
	}

	return job
}

// Qstat returns all jobs on the cluster, running jobs first. It invokes
// qstat for every user in XML mode.
func Qstat(r Runner) ([]Job, error) {
	out, err := r.Output("qstat", "-u", "*", "-xml")
	if err != nil {
		return nil, err
	}

	var doc jobListOutput
	if err := xml.Unmarshal(out, &doc); err != nil {
		return nil, fmt.Errorf("qstat output: %w", err)
	}

	jobs := []Job{}

	for _, el := range doc.Running {
		jobs = append(jobs, el.job())
	}
	for _, el := range doc.Pending {
		jobs = append(jobs, el.job())
	}

	return jobs, nil
}

// A Snapshot is the full cluster state from one qstat -F invocation.
type Snapshot struct {
	Nodes  []Node
	Jobs   []Job
	Users  []string // owners in first-seen order
	ByUser map[string][]Job
}

func (s *Snapshot) addJob(job Job) {
	if _, ok := s.ByUser[job.Owner]; !ok {
		s.Users = append(s.Users, job.Owner)
	}
	s.ByUser[job.Owner] = append(s.ByUser[job.Owner], job)
	s.Jobs = append(s.Jobs, job)
}

// Qstatf returns the full queue and job snapshot of the cluster. Queue
// instances sharing a node are merged; slot totals come from the first
// instance seen and job lists are concatenated.
func Qstatf(r Runner) (*Snapshot, error) {
	out, err := r.Output("qstat", "-u", "*", "-F", "-xml")
	if err != nil {
		return nil, err
	}

	var doc fullOutput
	if err := xml.Unmarshal(out, &doc); err != nil {
		return nil, fmt.Errorf("qstat -F output: %w", err)
	}

	snap := &Snapshot{ByUser: map[string][]Job{}}
	index := map[string]int{}

	for _, q := range doc.Queues {
		name := NodeName(q.Name)
		if name == "" {
			name = q.Name
		}

		i, ok := index[name]
		if !ok {
			i = len(snap.Nodes)
			index[name] = i

			resources := map[string]string{}
			for _, res := range q.Resources {
				resources[res.Name] = res.Value
			}

			snap.Nodes = append(snap.Nodes, Node{
				Name:       name,
				Queue:      q.Name,
				State:      q.State,
				Qtype:      q.Qtype,
				SlotsTotal: q.SlotsTotal,
				SlotsUsed:  q.SlotsUsed,
				SlotsResv:  q.SlotsResv,
				Resources:  resources,
			})
		}

		for _, el := range q.Jobs {
			job := el.job()
			job.Queue = q.Name
			job.Node = name
			snap.Nodes[i].Jobs = append(snap.Nodes[i].Jobs, job)
			snap.addJob(job)
		}
	}

	for _, el := range doc.Pending {
		snap.addJob(el.job())
	}

	return snap, nil
}
