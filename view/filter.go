package view

import (
	"regexp"

	"github.com/wooki-hpc/wsge/sge"
)

// MatchUser reports whether owner matches any of the patterns. An
// empty pattern list matches everyone.
func MatchUser(users []*regexp.Regexp, owner string) bool {
	if len(users) == 0 {
		return true
	}
	for _, re := range users {
		if re.MatchString(owner) {
			return true
		}
	}
	return false
}

// Filter returns the jobs whose owner matches any of the user patterns
// and whose queue matches the queue pattern. Nil patterns keep
// everything.
func Filter(jobs []sge.Job, users []*regexp.Regexp, queue *regexp.Regexp) []sge.Job {
	kept := []sge.Job{}

	for _, job := range jobs {
		if !MatchUser(users, job.Owner) {
			continue
		}
		if queue != nil && !queue.MatchString(job.Queue) {
			continue
		}
		kept = append(kept, job)
	}

	return kept
}
