// internal/api/public_handler.go
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"careers-builder/internal/careers"
)

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.db.Ping(c.Request.Context()); err != nil {
		s.logger.Error("Health check failed", map[string]interface{}{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "database unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleListCompanies returns every company ordered by name, each with
// its active job count.
func (s *Server) handleListCompanies(c *gin.Context) {
	companies, err := s.stores.Companies.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (s *Server) handleRecentJobs(c *gin.Context) {
	jobs, err := s.stores.Jobs.ListRecentActive(c.Request.Context(), s.recentN)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (s *Server) handleCareersPage(c *gin.Context) {
	filters := careers.Filters{
		Search:     c.Query("search"),
		Location:   c.Query("location"),
		Department: c.Query("department"),
		WorkType:   c.Query("workType"),
		Level:      c.Query("level"),
	}

	page, err := s.careers.Page(c.Request.Context(), c.Param("slug"), filters)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
