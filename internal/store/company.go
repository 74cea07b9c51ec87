// internal/store/company.go
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

const companyColumns = `id, slug, name, description, logo_url, banner_url,
	primary_color, secondary_color, sections, created_at, updated_at`

// CompanyStore persists companies and their embedded section lists.
type CompanyStore struct {
	db *sql.DB
}

func NewCompanyStore(db *sql.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

// Create inserts a new company. ID and timestamps are generated here.
func (s *CompanyStore) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	company.ID = uuid.New().String()
	company.CreatedAt = time.Now().UTC()
	company.UpdatedAt = company.CreatedAt

	// Sections are addressed by ID in later edits, so every stored
	// section gets one.
	for i := range company.Sections {
		if company.Sections[i].ID == "" {
			company.Sections[i].ID = uuid.New().String()
		}
	}

	sectionsJSON, err := models.EncodeSections(company.Sections)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO companies (
			id, slug, name, description, logo_url, banner_url,
			primary_color, secondary_color, sections, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
		company.ID,
		company.Slug,
		company.Name,
		company.Description,
		company.LogoURL,
		company.BannerURL,
		company.PrimaryColor,
		company.SecondaryColor,
		sectionsJSON,
		company.CreatedAt,
	)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}
	if company.Sections == nil {
		company.Sections = []models.Section{}
	}
	return company, nil
}

// First returns the earliest-created company, the implicit tenant for
// admin requests that do not thread a slug. sql.ErrNoRows maps to a
// not-found error.
func (s *CompanyStore) First(ctx context.Context) (*models.Company, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+companyColumns+`
		FROM companies
		ORDER BY created_at ASC
		LIMIT 1`)
	return scanCompany(row, "no company configured")
}

// GetBySlug fetches a company by its unique slug.
func (s *CompanyStore) GetBySlug(ctx context.Context, slug string) (*models.Company, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+companyColumns+`
		FROM companies
		WHERE slug = $1`, slug)
	return scanCompany(row, fmt.Sprintf("slug: %s", slug))
}

// GetByID fetches a company by primary key.
func (s *CompanyStore) GetByID(ctx context.Context, id string) (*models.Company, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+companyColumns+`
		FROM companies
		WHERE id = $1`, id)
	return scanCompany(row, fmt.Sprintf("id: %s", id))
}

// List returns all companies ordered by name ascending, each with its
// count of active jobs.
func (s *CompanyStore) List(ctx context.Context) ([]models.CompanySummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.slug, c.name, c.description, c.logo_url,
			c.primary_color, c.secondary_color,
			COUNT(j.id) FILTER (WHERE j.is_active) AS active_jobs
		FROM companies c
		LEFT JOIN jobs j ON j.company_id = c.id
		GROUP BY c.id
		ORDER BY c.name ASC`)
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	defer rows.Close()

	summaries := []models.CompanySummary{}
	for rows.Next() {
		var (
			summary     models.CompanySummary
			description sql.NullString
			logoURL     sql.NullString
		)
		if err := rows.Scan(
			&summary.ID,
			&summary.Slug,
			&summary.Name,
			&description,
			&logoURL,
			&summary.PrimaryColor,
			&summary.SecondaryColor,
			&summary.ActiveJobCount,
		); err != nil {
			return nil, errors.NewDatabaseQueryFailedError(err)
		}
		summary.Description = nullableString(description)
		summary.LogoURL = nullableString(logoURL)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	return summaries, nil
}

// Update persists only the supplied fields and returns the updated row.
func (s *CompanyStore) Update(ctx context.Context, id string, update models.CompanyUpdate) (*models.Company, error) {
	setClauses := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Slug != nil {
		add("slug", *update.Slug)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.LogoURL != nil {
		add("logo_url", *update.LogoURL)
	}
	if update.BannerURL != nil {
		add("banner_url", *update.BannerURL)
	}
	if update.PrimaryColor != nil {
		add("primary_color", *update.PrimaryColor)
	}
	if update.SecondaryColor != nil {
		add("secondary_color", *update.SecondaryColor)
	}
	if update.Sections != nil {
		sectionsJSON, err := models.EncodeSections(*update.Sections)
		if err != nil {
			return nil, errors.NewDatabaseUpdateFailedError(err)
		}
		add("sections", sectionsJSON)
	}

	if len(setClauses) == 0 {
		return s.GetByID(ctx, id)
	}
	add("updated_at", time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE companies
		SET %s
		WHERE id = $%d
		RETURNING `+companyColumns,
		joinClauses(setClauses), len(args))

	return scanCompany(s.db.QueryRowContext(ctx, query, args...), fmt.Sprintf("id: %s", id))
}

// Delete removes a company; jobs and their applications cascade in the
// database.
func (s *CompanyStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return errors.NewDatabaseDeleteFailedError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseDeleteFailedError(err)
	}
	if affected == 0 {
		return errors.NewCompanyNotFoundError(fmt.Sprintf("id: %s", id))
	}
	return nil
}

// detail describes what was looked up, for the not-found error.
func scanCompany(row *sql.Row, detail string) (*models.Company, error) {
	var (
		company      models.Company
		description  sql.NullString
		logoURL      sql.NullString
		bannerURL    sql.NullString
		sectionsJSON []byte
	)
	err := row.Scan(
		&company.ID,
		&company.Slug,
		&company.Name,
		&description,
		&logoURL,
		&bannerURL,
		&company.PrimaryColor,
		&company.SecondaryColor,
		&sectionsJSON,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewCompanyNotFoundError(detail)
	}
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}

	company.Description = nullableString(description)
	company.LogoURL = nullableString(logoURL)
	company.BannerURL = nullableString(bannerURL)

	sections, err := models.DecodeSections(sectionsJSON)
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	company.Sections = sections
	return &company, nil
}
