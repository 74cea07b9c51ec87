// internal/store/job.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"careers-builder/internal/common/errors"
	"careers-builder/internal/models"

	"github.com/google/uuid"
)

const jobColumns = `id, company_id, title, location, department, work_type,
	level, salary_min, salary_max, currency, description, requirements,
	tags, is_active, created_at, updated_at`

// JobStore persists job postings.
type JobStore struct {
	db *sql.DB
}

func NewJobStore(db *sql.DB) *JobStore {
	return &JobStore{db: db}
}

// Create inserts a job under its owning company. The caller is expected
// to have resolved the company first; a dangling company_id is caught by
// the foreign key.
func (s *JobStore) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	job.ID = uuid.New().String()
	job.CreatedAt = time.Now().UTC()
	job.UpdatedAt = job.CreatedAt
	if job.Currency == "" {
		job.Currency = "USD"
	}

	requirementsJSON, err := models.EncodeStringList(job.Requirements)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}
	tagsJSON, err := models.EncodeStringList(job.Tags)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO jobs (
			id, company_id, title, location, department, work_type,
			level, salary_min, salary_max, currency, description,
			requirements, tags, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)`,
		job.ID,
		job.CompanyID,
		job.Title,
		job.Location,
		job.Department,
		job.WorkType,
		job.Level,
		job.SalaryMin,
		job.SalaryMax,
		job.Currency,
		job.Description,
		requirementsJSON,
		tagsJSON,
		job.IsActive,
		job.CreatedAt,
	)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}
	return job, nil
}

// GetByID fetches a job by primary key.
func (s *JobStore) GetByID(ctx context.Context, id string) (*models.Job, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE id = $1`, id)
	job, err := scanJobRow(row, id)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// ListAll returns every job with its owning company joined, newest first.
func (s *JobStore) ListAll(ctx context.Context) ([]models.Job, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT j.id, j.company_id, j.title, j.location, j.department,
			j.work_type, j.level, j.salary_min, j.salary_max, j.currency,
			j.description, j.requirements, j.tags, j.is_active,
			j.created_at, j.updated_at,
			c.id, c.slug, c.name, c.primary_color, c.secondary_color
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		ORDER BY j.created_at DESC`)
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var (
			job     models.Job
			scan    jobScan
			company models.Company
		)
		fields := scan.fields(&job)
		fields = append(fields,
			&company.ID, &company.Slug, &company.Name,
			&company.PrimaryColor, &company.SecondaryColor,
		)
		if err := rows.Scan(fields...); err != nil {
			return nil, errors.NewDatabaseQueryFailedError(err)
		}
		if err := scan.finish(&job); err != nil {
			return nil, err
		}
		job.Company = &company
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	return jobs, nil
}

// ListByCompany returns all jobs for one company, newest first.
func (s *JobStore) ListByCompany(ctx context.Context, companyID string) ([]models.Job, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE company_id = $1
		ORDER BY created_at DESC`, companyID)
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

// ListActiveByCompany returns a company's active jobs, newest first.
func (s *JobStore) ListActiveByCompany(ctx context.Context, companyID string) ([]models.Job, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE company_id = $1 AND is_active
		ORDER BY created_at DESC`, companyID)
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

// ListRecentActive returns the most recent active jobs across all
// companies with the owning company's display fields.
func (s *JobStore) ListRecentActive(ctx context.Context, limit int) ([]models.RecentJob, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT j.id, j.company_id, j.title, j.location, j.department,
			j.work_type, j.level, j.salary_min, j.salary_max, j.currency,
			j.description, j.requirements, j.tags, j.is_active,
			j.created_at, j.updated_at,
			c.name, c.slug, c.primary_color
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.is_active
		ORDER BY j.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	defer rows.Close()

	recent := []models.RecentJob{}
	for rows.Next() {
		var (
			entry models.RecentJob
			scan  jobScan
		)
		fields := scan.fields(&entry.Job)
		fields = append(fields,
			&entry.CompanyRef.Name,
			&entry.CompanyRef.Slug,
			&entry.CompanyRef.PrimaryColor,
		)
		if err := rows.Scan(fields...); err != nil {
			return nil, errors.NewDatabaseQueryFailedError(err)
		}
		if err := scan.finish(&entry.Job); err != nil {
			return nil, err
		}
		recent = append(recent, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	return recent, nil
}

// Update persists only the supplied fields and returns the updated row.
func (s *JobStore) Update(ctx context.Context, id string, update models.JobUpdate) (*models.Job, error) {
	setClauses := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Title != nil {
		add("title", *update.Title)
	}
	if update.Location != nil {
		add("location", *update.Location)
	}
	if update.Department != nil {
		add("department", *update.Department)
	}
	if update.WorkType != nil {
		add("work_type", *update.WorkType)
	}
	if update.Level != nil {
		add("level", *update.Level)
	}
	if update.SalaryMin != nil {
		add("salary_min", *update.SalaryMin)
	}
	if update.SalaryMax != nil {
		add("salary_max", *update.SalaryMax)
	}
	if update.Currency != nil {
		add("currency", *update.Currency)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.Requirements != nil {
		requirementsJSON, err := models.EncodeStringList(*update.Requirements)
		if err != nil {
			return nil, errors.NewDatabaseUpdateFailedError(err)
		}
		add("requirements", requirementsJSON)
	}
	if update.Tags != nil {
		tagsJSON, err := models.EncodeStringList(*update.Tags)
		if err != nil {
			return nil, errors.NewDatabaseUpdateFailedError(err)
		}
		add("tags", tagsJSON)
	}
	if update.IsActive != nil {
		add("is_active", *update.IsActive)
	}

	if len(setClauses) == 0 {
		return s.GetByID(ctx, id)
	}
	add("updated_at", time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE jobs
		SET %s
		WHERE id = $%d
		RETURNING `+jobColumns,
		joinClauses(setClauses), len(args))

	return scanJobRow(s.db.QueryRowContext(ctx, query, args...), id)
}

// Delete removes a job; its applications cascade in the database.
func (s *JobStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return errors.NewDatabaseDeleteFailedError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseDeleteFailedError(err)
	}
	if affected == 0 {
		return errors.NewJobNotFoundError(id)
	}
	return nil
}

// jobScan holds the nullable and JSON intermediates for one job row.
type jobScan struct {
	department   sql.NullString
	level        sql.NullString
	salaryMin    sql.NullInt64
	salaryMax    sql.NullInt64
	requirements []byte
	tags         []byte
}

func (scan *jobScan) fields(job *models.Job) []interface{} {
	return []interface{}{
		&job.ID, &job.CompanyID, &job.Title, &job.Location,
		&scan.department, &job.WorkType, &scan.level,
		&scan.salaryMin, &scan.salaryMax, &job.Currency,
		&job.Description, &scan.requirements, &scan.tags,
		&job.IsActive, &job.CreatedAt, &job.UpdatedAt,
	}
}

func (scan *jobScan) finish(job *models.Job) error {
	job.Department = nullableString(scan.department)
	job.Level = nullableString(scan.level)
	job.SalaryMin = nullableInt(scan.salaryMin)
	job.SalaryMax = nullableInt(scan.salaryMax)

	requirements, err := models.DecodeStringList(scan.requirements, "requirements")
	if err != nil {
		return errors.NewDatabaseQueryFailedError(err)
	}
	tags, err := models.DecodeStringList(scan.tags, "tags")
	if err != nil {
		return errors.NewDatabaseQueryFailedError(err)
	}
	job.Requirements = requirements
	job.Tags = tags
	return nil
}

func scanJobRow(row *sql.Row, id string) (*models.Job, error) {
	var (
		job  models.Job
		scan jobScan
	)
	err := row.Scan(scan.fields(&job)...)
	if err == sql.ErrNoRows {
		return nil, errors.NewJobNotFoundError(id)
	}
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	if err := scan.finish(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func collectJobs(rows *sql.Rows) ([]models.Job, error) {
	jobs := []models.Job{}
	for rows.Next() {
		var (
			job  models.Job
			scan jobScan
		)
		if err := rows.Scan(scan.fields(&job)...); err != nil {
			return nil, errors.NewDatabaseQueryFailedError(err)
		}
		if err := scan.finish(&job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	return jobs, nil
}
