package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/techdayconf/techday-backend/internal/directory"
	"github.com/techdayconf/techday-backend/internal/models"
	"github.com/techdayconf/techday-backend/internal/session"
)

// Context keys set by RequireSession for downstream handlers.
const (
	ContextAdmin = "adminUser"
	ContextEmail = "adminEmail"
)

// RequireSession resolves the admin session cookie. A missing, tampered, or
// expired token aborts with 401, as does a token whose email no longer maps
// to a configured admin. It must run before any permission check.
func RequireSession(codec *session.Codec, dir *directory.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		email, ok := codec.Verify(token, time.Now())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		admin := dir.GetAdminByEmail(email)
		if admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(ContextAdmin, admin)
		c.Set(ContextEmail, admin.Email)
		c.Next()
	}
}

// RequirePermission gates a route on one permission category. Runs after
// RequireSession; an unidentified caller is a 401, an identified caller
// without the permission is a 403.
func RequirePermission(dir *directory.Directory, perm models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmail)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !dir.HasPermission(email, perm) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
			return
		}
		c.Next()
	}
}

// RequireAnyPermission gates a route on holding at least one of the given
// permissions. Used by the upload endpoint, which serves several content
// editors.
func RequireAnyPermission(dir *directory.Directory, perms ...models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmail)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		for _, perm := range perms {
			if dir.HasPermission(email, perm) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
	}
}

// AdminFromContext returns the admin set by RequireSession, or nil.
func AdminFromContext(c *gin.Context) *models.AdminUser {
	value, exists := c.Get(ContextAdmin)
	if !exists {
		return nil
	}
	admin, ok := value.(*models.AdminUser)
	if !ok {
		return nil
	}
	return admin
}
