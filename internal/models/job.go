// internal/models/job.go
package models

import "time"

// Work type classification.
const (
	WorkTypeOnSite = "on-site"
	WorkTypeRemote = "remote"
	WorkTypeHybrid = "hybrid"
)

// Seniority levels.
const (
	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"
	LevelLead   = "lead"
)

// Job is a postable position. Visible to candidates only while IsActive.
type Job struct {
	ID           string    `json:"id" db:"id"`
	CompanyID    string    `json:"companyId" db:"company_id"`
	Title        string    `json:"title" db:"title"`
	Location     string    `json:"location" db:"location"`
	Department   *string   `json:"department,omitempty" db:"department"`
	WorkType     string    `json:"workType" db:"work_type"`
	Level        *string   `json:"level,omitempty" db:"level"`
	SalaryMin    *int      `json:"salaryMin,omitempty" db:"salary_min"`
	SalaryMax    *int      `json:"salaryMax,omitempty" db:"salary_max"`
	Currency     string    `json:"currency" db:"currency"`
	Description  string    `json:"description" db:"description"`
	Requirements []string  `json:"requirements" db:"requirements"`
	Tags         []string  `json:"tags" db:"tags"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Filled by joined reads, nil otherwise.
	Company *Company `json:"company,omitempty"`
}

// RecentJob is a public listing entry with the owning company's display
// fields joined in.
type RecentJob struct {
	Job
	CompanyRef CompanyRef `json:"company"`
}

// JobUpdate carries the subset of fields a PATCH supplies. Nil pointers
// mean "leave unchanged".
type JobUpdate struct {
	Title        *string
	Location     *string
	Department   *string
	WorkType     *string
	Level        *string
	SalaryMin    *int
	SalaryMax    *int
	Currency     *string
	Description  *string
	Requirements *[]string
	Tags         *[]string
	IsActive     *bool
}
