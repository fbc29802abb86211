package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/techdayconf/techday-backend/internal/config"
	"github.com/techdayconf/techday-backend/internal/directory"
	"github.com/techdayconf/techday-backend/internal/services"
	"github.com/techdayconf/techday-backend/internal/session"
	"golang.org/x/exp/slog"
)

// AuthHandler handles the two-step admin login, session status, and logout.
type AuthHandler struct {
	authService services.AuthService
	codec       *session.Codec
	dir         *directory.Directory
	secure      bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService, codec *session.Codec, dir *directory.Directory, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		codec:       codec,
		dir:         dir,
		secure:      cfg.IsProduction(),
	}
}

type authRequest struct {
	Action string `json:"action" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Answer string `json:"answer"`
	PIN    string `json:"pin"`
}

// Login handles POST /admin/auth with action get-question or verify.
func (h *AuthHandler) Login(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and action are required"})
		return
	}

	switch req.Action {
	case "get-question":
		// Same envelope whether or not the email is a configured admin, so
		// the endpoint does not leak which addresses are registered.
		question := h.authService.GetQuestion(req.Email)
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"question": question,
			"isValid":  true,
		})

	case "verify":
		if req.Answer == "" || req.PIN == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Answer and PIN are required"})
			return
		}
		admin, ok := h.authService.Verify(req.Email, req.Answer, req.PIN)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		token := h.codec.Sign(admin.Email, time.Now())
		session.SetCookie(c, token, h.secure)
		slog.Info("Admin logged in", "email", admin.Email, "role", admin.Role)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user":    admin.Public(),
		})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action"})
	}
}

// Status handles GET /admin/auth. It reports whether the caller holds a valid
// session and returns the public admin view when it does.
func (h *AuthHandler) Status(c *gin.Context) {
	token := session.TokenFromRequest(c)
	if token == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	email, ok := h.codec.Verify(token, time.Now())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	user := h.dir.GetPublicAdminByEmail(email)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": user})
}

// Logout handles DELETE /admin/auth and clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	session.ClearCookie(c, h.secure)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
