package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/claimpilot/backend/config"
	"github.com/claimpilot/backend/middleware"
	"github.com/claimpilot/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the token plus the tenant the case store and
// evidence bucket are keyed by.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Username  string `json:"username"`
	Tenant    string `json:"tenant"`
}

// Login authenticates a filer against the configured user list and
// issues a JWT scoped to their tenant.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Usernames are often email addresses; redact before logging.
	user := h.config.FindUser(req.Username)
	if user == nil || !passwordsMatch(user.Password, req.Password) {
		slog.Warn("login rejected",
			"username", logger.Redact(req.Username),
			"request_id", middleware.GetRequestID(c),
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(user.Username, user.Tenant, &h.config.Auth)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	slog.Info("login accepted",
		"tenant", user.Tenant,
		"request_id", middleware.GetRequestID(c),
	)

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
		Username:  user.Username,
		Tenant:    user.Tenant,
	})
}

// passwordsMatch compares in constant time so a wrong password and a
// nearly-right one are indistinguishable to a caller timing responses.
func passwordsMatch(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// GetCurrentUser returns the authenticated filer's identity.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	username := middleware.GetUsername(c)
	tenant := middleware.GetTenant(c)

	c.JSON(http.StatusOK, gin.H{
		"username": username,
		"tenant":   tenant,
	})
}
