// internal/models/application.go
package models

import "time"

// StatusPending is the canonical initial status of a submitted
// application.
const StatusPending = "pending"

// Application is a candidate's submitted interest in a specific job.
// Created once by the candidate and never updated by them; reviewed by
// admins.
type Application struct {
	ID            string    `json:"id" db:"id"`
	JobID         string    `json:"jobId" db:"job_id"`
	CandidateName string    `json:"candidateName" db:"candidate_name"`
	Email         string    `json:"email" db:"email"`
	ResumeURL     *string   `json:"resumeUrl,omitempty" db:"resume_url"`
	CoverLetter   *string   `json:"coverLetter,omitempty" db:"cover_letter"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	// Filled by joined reads, nil otherwise.
	Job *Job `json:"job,omitempty"`
}
