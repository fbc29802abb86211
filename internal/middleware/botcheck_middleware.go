package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techdayconf/techday-backend/pkg/botcheck"
	"golang.org/x/exp/slog"
)

// BotCheckMiddleware runs the upstream bot-detection check before any
// validation on public submission endpoints. A positive classification
// short-circuits with a generic denial and no writes. Provider failures
// fail open: a down provider must not take the forms down.
func BotCheckMiddleware(checker botcheck.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		isBot, err := checker.IsBot(c.Request.Context(), c.ClientIP(), c.Request.UserAgent(), c.Request.URL.Path)
		if err != nil {
			slog.Error("Bot check failed, allowing request", "error", err, "path", c.Request.URL.Path)
			c.Next()
			return
		}
		if isBot {
			slog.Warn("Bot request rejected", "ip", c.ClientIP(), "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}
