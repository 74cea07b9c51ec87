// internal/api/job_handler.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careers-builder/internal/common/validation"
	"careers-builder/internal/models"
)

const defaultCurrency = "USD"

func (s *Server) handleListJobs(c *gin.Context) {
	jobs, err := s.stores.Jobs.ListAll(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (s *Server) handleCreateJob(c *gin.Context) {
	company, err := s.resolveCompany(c.Request.Context(), c)
	if err != nil {
		s.fail(c, err)
		return
	}

	body, ok := bindPayload(c)
	if !ok {
		return
	}
	if !s.validatePayload(c, body, validation.JobSchema) {
		return
	}

	requirements, err := models.DecodeStringList(body["requirements"], "requirements")
	if err != nil {
		s.fail(c, fieldValidationError("requirements", "must be a JSON array of strings"))
		return
	}
	tags, err := models.DecodeStringList(body["tags"], "tags")
	if err != nil {
		s.fail(c, fieldValidationError("tags", "must be a JSON array of strings"))
		return
	}

	job := &models.Job{
		CompanyID:    company.ID,
		Title:        stringField(body, "title"),
		Location:     stringField(body, "location"),
		Department:   optStringField(body, "department"),
		WorkType:     stringField(body, "workType"),
		Level:        optStringField(body, "level"),
		SalaryMin:    optIntField(body, "salaryMin"),
		SalaryMax:    optIntField(body, "salaryMax"),
		Currency:     defaultCurrency,
		Description:  stringField(body, "description"),
		Requirements: requirements,
		Tags:         tags,
		IsActive:     boolField(body, "isActive", true),
	}
	if currency := stringField(body, "currency"); currency != "" {
		job.Currency = currency
	}

	created, err := s.stores.Jobs.Create(c.Request.Context(), job)
	if err != nil {
		s.fail(c, err)
		return
	}
	created.Company = company
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateJob(c *gin.Context) {
	id := c.Param("id")

	body, ok := bindPayload(c)
	if !ok {
		return
	}
	if !s.validatePayload(c, body, validation.JobSchema.Partial()) {
		return
	}

	update := models.JobUpdate{
		Title:       presentStringField(body, "title"),
		Location:    presentStringField(body, "location"),
		Department:  presentStringField(body, "department"),
		WorkType:    presentStringField(body, "workType"),
		Level:       presentStringField(body, "level"),
		SalaryMin:   optIntField(body, "salaryMin"),
		SalaryMax:   optIntField(body, "salaryMax"),
		Currency:    presentStringField(body, "currency"),
		Description: presentStringField(body, "description"),
		IsActive:    optBoolField(body, "isActive"),
	}
	if raw, exists := body["requirements"]; exists {
		requirements, err := models.DecodeStringList(raw, "requirements")
		if err != nil {
			s.fail(c, fieldValidationError("requirements", "must be a JSON array of strings"))
			return
		}
		update.Requirements = &requirements
	}
	if raw, exists := body["tags"]; exists {
		tags, err := models.DecodeStringList(raw, "tags")
		if err != nil {
			s.fail(c, fieldValidationError("tags", "must be a JSON array of strings"))
			return
		}
		update.Tags = &tags
	}

	updated, err := s.stores.Jobs.Update(c.Request.Context(), id, update)
	if err != nil {
		s.fail(c, err)
		return
	}
	if company, err := s.stores.Companies.GetByID(c.Request.Context(), updated.CompanyID); err == nil {
		updated.Company = company
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteJob(c *gin.Context) {
	if err := s.stores.Jobs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
