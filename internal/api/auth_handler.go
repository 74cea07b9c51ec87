// internal/api/auth_handler.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

// handleLogin validates the admin credential pair and issues a session
// token.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Username and password are required",
		})
		return
	}

	if !s.auth.VerifyCredentials(req.Username, req.Password) {
		s.logger.Warn("login rejected", map[string]interface{}{
			"username": req.Username,
		})
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   s.auth.CreateSession(),
	})
}

// handleVerify reports whether a session token is still valid.
func (s *Server) handleVerify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": s.auth.VerifySession(req.Token)})
}
