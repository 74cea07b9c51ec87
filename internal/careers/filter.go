// internal/careers/filter.go
package careers

import (
	"strings"

	"careers-builder/internal/models"
)

// Filters narrows a job list. All predicates combine with logical AND;
// an empty field imposes no constraint, so the zero value passes
// everything through.
type Filters struct {
	// Search matches case-insensitively against title, description and
	// tags.
	Search string
	// Location and Department are case-insensitive substring matches.
	Location   string
	Department string
	// WorkType and Level are exact matches.
	WorkType string
	Level    string
}

// Apply returns the jobs satisfying every set predicate. Order is
// preserved and the input slice is not modified.
func (f Filters) Apply(jobs []models.Job) []models.Job {
	filtered := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if f.matches(&job) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

func (f Filters) matches(job *models.Job) bool {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		hit := strings.Contains(strings.ToLower(job.Title), search) ||
			strings.Contains(strings.ToLower(job.Description), search)
		if !hit {
			for _, tag := range job.Tags {
				if strings.Contains(strings.ToLower(tag), search) {
					hit = true
					break
				}
			}
		}
		if !hit {
			return false
		}
	}

	if f.Location != "" &&
		!strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location)) {
		return false
	}

	if f.Department != "" {
		if job.Department == nil ||
			!strings.Contains(strings.ToLower(*job.Department), strings.ToLower(f.Department)) {
			return false
		}
	}

	if f.WorkType != "" && job.WorkType != f.WorkType {
		return false
	}

	if f.Level != "" {
		if job.Level == nil || *job.Level != f.Level {
			return false
		}
	}

	return true
}
