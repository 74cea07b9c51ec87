// internal/models/company.go
package models

import "time"

// Company is the tenant owning a careers page, its branding, sections
// and jobs.
type Company struct {
	ID             string    `json:"id" db:"id"`
	Slug           string    `json:"slug" db:"slug"`
	Name           string    `json:"name" db:"name"`
	Description    *string   `json:"description,omitempty" db:"description"`
	LogoURL        *string   `json:"logoUrl,omitempty" db:"logo_url"`
	BannerURL      *string   `json:"bannerUrl,omitempty" db:"banner_url"`
	PrimaryColor   string    `json:"primaryColor" db:"primary_color"`
	SecondaryColor string    `json:"secondaryColor" db:"secondary_color"`
	Sections       []Section `json:"sections" db:"sections"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// CompanySummary is the public directory view of a company with its
// number of active job postings.
type CompanySummary struct {
	ID             string  `json:"id"`
	Slug           string  `json:"slug"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	LogoURL        *string `json:"logoUrl,omitempty"`
	PrimaryColor   string  `json:"primaryColor"`
	SecondaryColor string  `json:"secondaryColor"`
	ActiveJobCount int     `json:"activeJobCount"`
}

// CompanyUpdate carries the subset of fields a PATCH supplies. Nil
// pointers mean "leave unchanged".
type CompanyUpdate struct {
	Name           *string
	Slug           *string
	Description    *string
	LogoURL        *string
	BannerURL      *string
	PrimaryColor   *string
	SecondaryColor *string
	Sections       *[]Section
}

// CompanyRef is the subset of company fields joined onto public job
// listings.
type CompanyRef struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	PrimaryColor string `json:"primaryColor"`
}
