// internal/api/company_handler.go
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"careers-builder/internal/common/errors"
	"careers-builder/internal/common/validation"
	"careers-builder/internal/models"
	"careers-builder/internal/sections"
)

// resolveCompany threads an explicit tenant through admin requests via
// the ?slug= query parameter. Without it, the earliest-created company
// is the implicit tenant (legacy single-tenant behavior).
func (s *Server) resolveCompany(ctx context.Context, c *gin.Context) (*models.Company, error) {
	if slug := c.Query("slug"); slug != "" {
		return s.stores.Companies.GetBySlug(ctx, slug)
	}
	return s.stores.Companies.First(ctx)
}

func (s *Server) handleGetCompany(c *gin.Context) {
	company, err := s.resolveCompany(c.Request.Context(), c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (s *Server) handleCreateCompany(c *gin.Context) {
	body, ok := bindPayload(c)
	if !ok {
		return
	}
	if !s.validatePayload(c, body, validation.CompanySchema) {
		return
	}

	sectionList, err := models.DecodeSections(body["sections"])
	if err != nil {
		s.fail(c, fieldValidationError("sections", "must be a JSON array of sections"))
		return
	}

	company := &models.Company{
		Slug:           stringField(body, "slug"),
		Name:           stringField(body, "name"),
		Description:    optStringField(body, "description"),
		LogoURL:        optStringField(body, "logoUrl"),
		BannerURL:      optStringField(body, "bannerUrl"),
		PrimaryColor:   stringField(body, "primaryColor"),
		SecondaryColor: stringField(body, "secondaryColor"),
		Sections:       withSectionIDs(sectionList),
	}

	created, err := s.stores.Companies.Create(c.Request.Context(), company)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateCompany(c *gin.Context) {
	company, err := s.resolveCompany(c.Request.Context(), c)
	if err != nil {
		s.fail(c, err)
		return
	}

	body, ok := bindPayload(c)
	if !ok {
		return
	}
	if !s.validatePayload(c, body, validation.CompanySchema.Partial()) {
		return
	}

	update := models.CompanyUpdate{
		Name:           presentStringField(body, "name"),
		Slug:           presentStringField(body, "slug"),
		Description:    presentStringField(body, "description"),
		LogoURL:        presentStringField(body, "logoUrl"),
		BannerURL:      presentStringField(body, "bannerUrl"),
		PrimaryColor:   presentStringField(body, "primaryColor"),
		SecondaryColor: presentStringField(body, "secondaryColor"),
	}
	if raw, exists := body["sections"]; exists {
		sectionList, err := models.DecodeSections(raw)
		if err != nil {
			s.fail(c, fieldValidationError("sections", "must be a JSON array of sections"))
			return
		}
		sectionList = withSectionIDs(sectionList)
		update.Sections = &sectionList
	}

	updated, err := s.stores.Companies.Update(c.Request.Context(), company.ID, update)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// --- section editing ---

type sectionOperation struct {
	Action  string                 `json:"action"` // add, update, delete, toggle
	ID      string                 `json:"id,omitempty"`
	Section map[string]interface{} `json:"section,omitempty"`
}

type editSectionsRequest struct {
	Operations []sectionOperation `json:"operations"`
}

// handleEditSections applies a batch of section edits and persists the
// full list once, preserving the editor's edit-then-explicit-save
// ordering. A failed operation aborts the batch before anything is
// written.
func (s *Server) handleEditSections(c *gin.Context) {
	company, err := s.resolveCompany(c.Request.Context(), c)
	if err != nil {
		s.fail(c, err)
		return
	}

	var req editSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fieldValidationError("operations", "must be a list of section operations"))
		return
	}
	if len(req.Operations) == 0 {
		s.fail(c, fieldValidationError("operations", "at least one operation is required"))
		return
	}

	editor := sections.NewEditor(company.ID, company.Sections, sections.SaverFunc(
		func(ctx context.Context, companyID string, list []models.Section) error {
			_, err := s.stores.Companies.Update(ctx, companyID, models.CompanyUpdate{Sections: &list})
			return err
		},
	))

	for _, op := range req.Operations {
		if !s.applySectionOperation(c, editor, op) {
			return
		}
	}

	if err := editor.Save(c.Request.Context()); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":    editor.State(),
		"sections": editor.Sections(),
	})
}

func (s *Server) applySectionOperation(c *gin.Context, editor *sections.Editor, op sectionOperation) bool {
	switch op.Action {
	case "add", "update":
		if !s.validatePayload(c, op.Section, validation.SectionSchema) {
			return false
		}
		section := sectionFromPayload(op.Section)
		if op.Action == "add" {
			editor.Add(section)
			return true
		}
		if err := editor.Update(op.ID, section); err != nil {
			s.fail(c, errors.NewSectionNotFoundError(op.ID))
			return false
		}
		return true
	case "delete":
		if err := editor.Delete(op.ID); err != nil {
			s.fail(c, errors.NewSectionNotFoundError(op.ID))
			return false
		}
		return true
	case "toggle":
		if err := editor.Toggle(op.ID); err != nil {
			s.fail(c, errors.NewSectionNotFoundError(op.ID))
			return false
		}
		return true
	default:
		s.fail(c, fieldValidationError("action", "must be one of: add, update, delete, toggle"))
		return false
	}
}

// withSectionIDs assigns identifiers to sections submitted without one
// so later edits can address them.
func withSectionIDs(list []models.Section) []models.Section {
	for i := range list {
		if list[i].ID == "" {
			list[i].ID = uuid.NewString()
		}
	}
	return list
}

func sectionFromPayload(body map[string]interface{}) models.Section {
	section := models.Section{
		ID:       stringField(body, "id"),
		Type:     stringField(body, "type"),
		Title:    stringField(body, "title"),
		Content:  stringField(body, "content"),
		IsActive: boolField(body, "isActive", true),
	}
	if order := optIntField(body, "order"); order != nil {
		section.Order = *order
	}
	return section
}
