// internal/api/application_handler.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careers-builder/internal/common/metrics"
	"careers-builder/internal/common/validation"
	"careers-builder/internal/models"
)

// handleCreateApplication is the public submission endpoint. The store
// rejects applications against unknown jobs with a 404.
func (s *Server) handleCreateApplication(c *gin.Context) {
	body, ok := bindPayload(c)
	if !ok {
		return
	}
	if !s.validatePayload(c, body, validation.ApplicationSchema) {
		return
	}

	app := &models.Application{
		JobID:         stringField(body, "jobId"),
		CandidateName: stringField(body, "candidateName"),
		Email:         stringField(body, "email"),
		ResumeURL:     optStringField(body, "resumeUrl"),
		CoverLetter:   optStringField(body, "coverLetter"),
	}

	created, err := s.stores.Applications.Create(c.Request.Context(), app)
	if err != nil {
		s.fail(c, err)
		return
	}

	metrics.ApplicationsSubmitted.Inc()
	s.logger.Info("Application submitted", map[string]interface{}{
		"application_id": created.ID,
		"job_id":         created.JobID,
	})
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleListApplications(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		apps []models.Application
		err  error
	)
	if jobID := c.Query("jobId"); jobID != "" {
		apps, err = s.stores.Applications.ListByJob(ctx, jobID)
	} else {
		apps, err = s.stores.Applications.ListAll(ctx)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}
