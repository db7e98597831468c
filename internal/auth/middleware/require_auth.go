package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/favourop/portfolio-backend/internal/auth"
)

// SessionCookie carries the session token for browser clients that do not
// set an Authorization header.
const SessionCookie = "portfolio_session"

// RequireAuth rejects the request with 401 unless the bearer token (or
// session cookie) resolves to a principal. It runs before any storage
// access on every mutating route.
func RequireAuth(authorizer auth.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			c.Abort()
			return
		}

		principal, err := authorizer.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		auth.SetPrincipal(c, principal)
		c.Next()
	}
}

// extractToken prefers the Bearer token from the Authorization header and
// falls back to the session cookie.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
