package middleware

import (
	"net/http" // HTTP status codes

	"medtrack/internal/domain"  // Role constants
	"medtrack/internal/session" // Session token helpers

	"github.com/gin-gonic/gin" // Gin web framework
)

// CookieName is the cookie carrying the session token
const CookieName = "medtrack_session"

// SessionKey is the gin context key holding the parsed session claims
const SessionKey = "session"

// SessionMiddleware validates the session cookie and loads the identity.
// Every failure mode is the same redirect to the login page; a browser user
// is navigated, never shown an error.
func SessionMiddleware(secret string, revoked *session.Revocations) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName) // Read the session cookie
		if err != nil || tokenStr == "" {
			// No session at all, send to login
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		claims, err := session.Parse(tokenStr, secret) // Parse and validate the token
		if err != nil {
			// Bad or expired token, send to login
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		// A token revoked by logout no longer carries a session
		if gone, err := revoked.IsRevoked(c.Request.Context(), claims.ID); err != nil || gone {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(SessionKey, claims) // Store identity in context
		c.Next()                  // Proceed to the next handler
	}
}

// DoctorOnlyMiddleware gates routes on the doctor role. The failure outcome
// is identical to not being logged in; callers cannot tell the two apart.
func DoctorOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Identity(c) // Session claims set by SessionMiddleware
		if claims == nil || claims.Role != domain.RoleDoctor {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next() // Doctor confirmed, proceed
	}
}

// Identity returns the session claims for the request, or nil outside a session
func Identity(c *gin.Context) *session.Claims {
	v, ok := c.Get(SessionKey) // Get claims from context
	if !ok {
		return nil
	}
	claims, _ := v.(*session.Claims)
	return claims
}
