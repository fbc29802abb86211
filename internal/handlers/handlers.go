// Package handlers contains the gin HTTP handlers. Every handler converts
// service errors into the fixed HTTP taxonomy at its boundary: validation
// 400, no session 401, no permission 403, unknown id 404, duplicate email
// 409, store unconfigured 503, anything else a logged 500 with a generic
// message.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techdayconf/techday-backend/internal/services"
	"golang.org/x/exp/slog"
)

// respondError maps a service error to its HTTP response. conflictMsg is the
// endpoint-specific 409 message; notFoundMsg the 404 one.
func respondError(c *gin.Context, err error, conflictMsg, notFoundMsg string) {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.Is(err, services.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": conflictMsg})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		slog.Error("Internal error", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
