// internal/api/middleware.go
package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"careers-builder/internal/common/errors"
	"careers-builder/internal/common/metrics"
)

// requestLogger logs one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info("request", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}

// requestMetrics records Prometheus counters and latency per route.
// FullPath keeps the label cardinality bounded to registered routes.
func (s *Server) requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestsInFlight.Inc()
		start := time.Now()
		c.Next()
		metrics.HTTPRequestsInFlight.Dec()

		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}

// requireSession gates admin routes on a valid bearer session token.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			s.fail(c, errors.NewSessionInvalidError("missing bearer token"))
			c.Abort()
			return
		}
		if !s.auth.VerifySession(token) {
			s.fail(c, errors.NewSessionInvalidError("token expired or malformed"))
			c.Abort()
			return
		}
		c.Next()
	}
}
