// internal/common/database/migrate.go
package database

import (
	"context"
	"fmt"
)

// Schema notes:
//   - sections, requirements and tags are typed JSONB columns holding
//     ordered lists, decoded once in the store layer.
//   - jobs.company_id and applications.job_id cascade on delete so removing
//     a company removes its jobs and their applications in one statement.
//   - applications.status defaults to 'pending'.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id              UUID PRIMARY KEY,
		slug            TEXT NOT NULL UNIQUE,
		name            TEXT NOT NULL,
		description     TEXT,
		logo_url        TEXT,
		banner_url      TEXT,
		primary_color   TEXT NOT NULL DEFAULT '#3b82f6',
		secondary_color TEXT NOT NULL DEFAULT '#1e40af',
		sections        JSONB NOT NULL DEFAULT '[]',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id           UUID PRIMARY KEY,
		company_id   UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		location     TEXT NOT NULL,
		department   TEXT,
		work_type    TEXT NOT NULL,
		level        TEXT,
		salary_min   INTEGER,
		salary_max   INTEGER,
		currency     TEXT NOT NULL DEFAULT 'USD',
		description  TEXT NOT NULL,
		requirements JSONB NOT NULL DEFAULT '[]',
		tags         JSONB NOT NULL DEFAULT '[]',
		is_active    BOOLEAN NOT NULL DEFAULT TRUE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id             UUID PRIMARY KEY,
		job_id         UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		candidate_name TEXT NOT NULL,
		email          TEXT NOT NULL,
		resume_url     TEXT,
		cover_letter   TEXT,
		status         TEXT NOT NULL DEFAULT 'pending',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_company_id ON jobs(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_is_active ON jobs(is_active)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id)`,
}

// Migrate creates the schema if it does not exist yet.
func (c *PostgresClient) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := c.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
