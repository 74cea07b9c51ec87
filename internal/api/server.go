// internal/api/server.go

// Package api exposes the HTTP JSON surface: admin CRUD over companies,
// jobs and applications, the authentication endpoints and the public
// careers pages.
package api

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"careers-builder/internal/careers"
	"careers-builder/internal/common/auth"
	"careers-builder/internal/common/config"
	"careers-builder/internal/common/errors"
	"careers-builder/internal/common/logger"
	"careers-builder/internal/store"
)

// Pinger is the health-check view of the database client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wires stores, services and handlers into a gin engine.
type Server struct {
	engine  *gin.Engine
	stores  *store.Stores
	careers *careers.Service
	auth    auth.Authenticator
	errs    *errors.ErrorHandler
	logger  logger.Logger
	db      Pinger
	recentN int
}

// recentJobsLimit caps GET /jobs/recent.
const recentJobsLimit = 10

func NewServer(
	cfg *config.Config,
	stores *store.Stores,
	careersService *careers.Service,
	authenticator auth.Authenticator,
	db Pinger,
	log logger.Logger,
) *Server {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		engine:  gin.New(),
		stores:  stores,
		careers: careersService,
		auth:    authenticator,
		errs:    errors.NewErrorHandler(log),
		logger:  log.WithFields(map[string]interface{}{"component": "api"}),
		db:      db,
		recentN: recentJobsLimit,
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestLogger())
	s.engine.Use(s.requestMetrics())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	s.engine.Use(cors.New(corsConfig))

	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.engine.Group("/api/v1")

	api.GET("/health", s.handleHealth)

	// Auth
	api.POST("/auth/login", s.handleLogin)
	api.POST("/auth/verify", s.handleVerify)

	// Public, candidate-facing
	api.GET("/companies", s.handleListCompanies)
	api.GET("/jobs/recent", s.handleRecentJobs)
	api.GET("/careers/:slug", s.handleCareersPage)
	api.POST("/applications", s.handleCreateApplication)

	// Admin, session-gated
	admin := api.Group("/admin", s.requireSession())
	admin.GET("/company", s.handleGetCompany)
	admin.POST("/company", s.handleCreateCompany)
	admin.PATCH("/company", s.handleUpdateCompany)
	admin.POST("/company/sections", s.handleEditSections)
	admin.GET("/jobs", s.handleListJobs)
	admin.POST("/jobs", s.handleCreateJob)
	admin.PATCH("/jobs/:id", s.handleUpdateJob)
	admin.DELETE("/jobs/:id", s.handleDeleteJob)
	admin.GET("/applications", s.handleListApplications)
}

// Handler returns the underlying http.Handler for serving and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// fail renders any application error through the shared error handler.
func (s *Server) fail(c *gin.Context, err error) {
	status, body := s.errs.Render(err)
	c.JSON(status, body)
}
