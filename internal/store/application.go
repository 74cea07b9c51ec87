// internal/store/application.go
package store

import (
	"context"
	"database/sql"
	"time"

	"careers-builder/internal/common/errors"
	"careers-builder/internal/models"

	"github.com/google/uuid"
)

// ApplicationStore persists candidate applications.
type ApplicationStore struct {
	db *sql.DB
}

func NewApplicationStore(db *sql.DB) *ApplicationStore {
	return &ApplicationStore{db: db}
}

// Create inserts an application after confirming the target job exists.
// The existence check and insert run on the same pool; a job deleted in
// between is caught by the foreign key.
func (s *ApplicationStore) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, app.JobID).Scan(&exists)
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	if !exists {
		return nil, errors.NewJobNotFoundError(app.JobID)
	}

	app.ID = uuid.New().String()
	app.CreatedAt = time.Now().UTC()
	if app.Status == "" {
		app.Status = models.StatusPending
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO applications (
			id, job_id, candidate_name, email, resume_url, cover_letter,
			status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		app.ID,
		app.JobID,
		app.CandidateName,
		app.Email,
		app.ResumeURL,
		app.CoverLetter,
		app.Status,
		app.CreatedAt,
	)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}
	return app, nil
}

// ListAll returns every application, newest first.
func (s *ApplicationStore) ListAll(ctx context.Context) ([]models.Application, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, job_id, candidate_name, email, resume_url, cover_letter,
			status, created_at
		FROM applications
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

// ListByJob returns all applications for one job, newest first.
func (s *ApplicationStore) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, job_id, candidate_name, email, resume_url, cover_letter,
			status, created_at
		FROM applications
		WHERE job_id = $1
		ORDER BY created_at DESC`, jobID)
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func collectApplications(rows *sql.Rows) ([]models.Application, error) {
	apps := []models.Application{}
	for rows.Next() {
		var (
			app         models.Application
			resumeURL   sql.NullString
			coverLetter sql.NullString
		)
		if err := rows.Scan(
			&app.ID,
			&app.JobID,
			&app.CandidateName,
			&app.Email,
			&resumeURL,
			&coverLetter,
			&app.Status,
			&app.CreatedAt,
		); err != nil {
			return nil, errors.NewDatabaseQueryFailedError(err)
		}
		app.ResumeURL = nullableString(resumeURL)
		app.CoverLetter = nullableString(coverLetter)
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	return apps, nil
}
