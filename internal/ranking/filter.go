package ranking

import (
	"strings"

	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// FilterJobs returns the jobs whose title, company or any tag contains term,
// case-insensitively. An empty term returns the input unfiltered.
func FilterJobs(jobs []types.Job, term string) []types.Job {
	if term == "" {
		return jobs
	}
	needle := strings.ToLower(term)

	filtered := make([]types.Job, 0, len(jobs))
	for _, job := range jobs {
		if matchesJob(job, needle) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

func matchesJob(job types.Job, needle string) bool {
	if strings.Contains(strings.ToLower(job.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(job.Company), needle) {
		return true
	}
	for _, tag := range job.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
