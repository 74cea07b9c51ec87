package careers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"careers-builder/internal/models"
)

func strPtr(s string) *string { return &s }

func sampleJobs() []models.Job {
	return []models.Job{
		{
			ID:          "j1",
			Title:       "Senior Software Engineer",
			Location:    "San Francisco, CA",
			Department:  strPtr("Engineering"),
			WorkType:    models.WorkTypeHybrid,
			Level:       strPtr(models.LevelSenior),
			Description: "Build the core platform.",
			Tags:        []string{"Go", "PostgreSQL"},
		},
		{
			ID:          "j2",
			Title:       "Product Manager",
			Location:    "New York, NY",
			Department:  strPtr("Product"),
			WorkType:    models.WorkTypeOnSite,
			Level:       strPtr(models.LevelMid),
			Description: "Own the roadmap.",
			Tags:        []string{"Strategy"},
		},
		{
			ID:          "j3",
			Title:       "UX Designer",
			Location:    "Remote",
			Department:  strPtr("Design"),
			WorkType:    models.WorkTypeRemote,
			Level:       strPtr(models.LevelMid),
			Description: "Design delightful workflows.",
			Tags:        []string{"Figma"},
		},
		{
			ID:          "j4",
			Title:       "DevOps Engineer",
			Location:    "Remote",
			WorkType:    models.WorkTypeRemote,
			Description: "Keep the lights on.",
			Tags:        []string{"AWS", "Kubernetes"},
		},
	}
}

func ids(jobs []models.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestFilters_Apply(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{
			name:    "zero value passes everything in order",
			filters: Filters{},
			want:    []string{"j1", "j2", "j3", "j4"},
		},
		{
			name:    "search matches title case-insensitively",
			filters: Filters{Search: "ENGINEER"},
			want:    []string{"j1", "j4"},
		},
		{
			name:    "search matches description",
			filters: Filters{Search: "roadmap"},
			want:    []string{"j2"},
		},
		{
			name:    "search matches tags",
			filters: Filters{Search: "kubernetes"},
			want:    []string{"j4"},
		},
		{
			name:    "location substring match",
			filters: Filters{Location: "remote"},
			want:    []string{"j3", "j4"},
		},
		{
			name:    "department substring match",
			filters: Filters{Department: "eng"},
			want:    []string{"j1"},
		},
		{
			name:    "department filter skips jobs without one",
			filters: Filters{Department: "ops"},
			want:    []string{},
		},
		{
			name:    "work type exact match",
			filters: Filters{WorkType: models.WorkTypeRemote},
			want:    []string{"j3", "j4"},
		},
		{
			name:    "work type is not a substring match",
			filters: Filters{WorkType: "remot"},
			want:    []string{},
		},
		{
			name:    "level exact match",
			filters: Filters{Level: models.LevelMid},
			want:    []string{"j2", "j3"},
		},
		{
			name:    "level filter skips jobs without one",
			filters: Filters{Level: models.LevelEntry},
			want:    []string{},
		},
		{
			name: "all predicates AND together",
			filters: Filters{
				Search:   "design",
				Location: "remote",
				WorkType: models.WorkTypeRemote,
				Level:    models.LevelMid,
			},
			want: []string{"j3"},
		},
		{
			name:    "conflicting predicates yield nothing",
			filters: Filters{Search: "engineer", WorkType: models.WorkTypeOnSite},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := sampleJobs()
			got := tt.filters.Apply(jobs)
			assert.Equal(t, tt.want, ids(got))
			// The input slice is never reordered or truncated.
			assert.Equal(t, []string{"j1", "j2", "j3", "j4"}, ids(jobs))
		})
	}
}
