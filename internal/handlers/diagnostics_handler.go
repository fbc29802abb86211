package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/techdayconf/techday-backend/internal/config"
	"github.com/techdayconf/techday-backend/internal/directory"
	"github.com/techdayconf/techday-backend/pkg/mongodb"
)

// DiagnosticsHandler reports configuration and dependency health. Gated on
// the users permission; this is the only endpoint allowed to expose
// diagnostic detail.
type DiagnosticsHandler struct {
	client *mongodb.Client
	dir    *directory.Directory
	cfg    *config.Config
}

// NewDiagnosticsHandler creates a new DiagnosticsHandler
func NewDiagnosticsHandler(client *mongodb.Client, dir *directory.Directory, cfg *config.Config) *DiagnosticsHandler {
	return &DiagnosticsHandler{client: client, dir: dir, cfg: cfg}
}

// Diagnostics handles GET /admin/diagnostics
func (h *DiagnosticsHandler) Diagnostics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	storeOK := false
	if h.client != nil {
		storeOK = h.client.Ping(ctx) == nil
	}

	c.JSON(http.StatusOK, gin.H{
		"store":            storeOK,
		"mailConfigured":   h.cfg.Mail.Enabled,
		"botCheckEnabled":  h.cfg.BotCheck.Enabled,
		"storageBucket":    h.cfg.Storage.Bucket != "",
		"configuredAdmins": h.dir.Count(),
		"defaultSecret":    h.cfg.Session.Secret == config.DefaultSessionSecret,
		"environment":      h.cfg.Server.Environment,
	})
}
