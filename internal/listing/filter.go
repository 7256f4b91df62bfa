package listing

import (
	"strings"

	"github.com/jimezsa/jobboard/internal/models"
)

// Matches reports whether query is a case-insensitive substring of the
// posting's title or location.
func Matches(job models.JobPosting, query string) bool {
	needle := strings.ToLower(query)
	return strings.Contains(strings.ToLower(job.JobTitle), needle) ||
		strings.Contains(strings.ToLower(job.JobLocation), needle)
}

// Filter returns the postings of jobs that match query, in their collection
// order. An empty query returns a copy of jobs.
func Filter(jobs []models.JobPosting, query string) []models.JobPosting {
	out := make([]models.JobPosting, 0, len(jobs))
	if query == "" {
		return append(out, jobs...)
	}
	for _, job := range jobs {
		if Matches(job, query) {
			out = append(out, job)
		}
	}
	return out
}
