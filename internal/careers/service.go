// internal/careers/service.go

// Package careers composes the candidate-facing careers page: the
// company resolved by slug, its active content sections and its active,
// filterable job postings.
package careers

import (
	"context"

	"careers-builder/internal/common/logger"
	"careers-builder/internal/models"
	"careers-builder/internal/store"
)

// Page is everything the public careers page needs for one company.
type Page struct {
	Company  *models.Company  `json:"company"`
	Sections []models.Section `json:"sections"`
	Jobs     []models.Job     `json:"jobs"`
}

type Service struct {
	companies *store.CompanyStore
	jobs      *store.JobStore
	logger    logger.Logger
}

func NewService(companies *store.CompanyStore, jobs *store.JobStore, log logger.Logger) *Service {
	return &Service{
		companies: companies,
		jobs:      jobs,
		logger:    log.WithFields(map[string]interface{}{"component": "careers"}),
	}
}

// Page resolves a company by slug and returns its page data. An unknown
// slug yields the store's not-found error rather than stale data.
// Inactive jobs never appear regardless of filters.
func (s *Service) Page(ctx context.Context, slug string, filters Filters) (*Page, error) {
	company, err := s.companies.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.ListActiveByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("careers page resolved", map[string]interface{}{
		"slug":      slug,
		"jobsTotal": len(jobs),
	})

	return &Page{
		Company:  company,
		Sections: models.ActiveSections(company.Sections),
		Jobs:     filters.Apply(jobs),
	}, nil
}
