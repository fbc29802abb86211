package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the admin session cookie.
const CookieName = "admin_session"

// SetCookie attaches a session token to the response. Secure is set only in
// production so local HTTP development keeps working.
func SetCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(TTL.Seconds()), "/", "", secure, true)
}

// ClearCookie expires the session cookie client-side.
func ClearCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}

// TokenFromRequest extracts the session token from the request cookie.
// Returns "" when no cookie is present.
func TokenFromRequest(c *gin.Context) string {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return token
}
