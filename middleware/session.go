package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie identifies a visitor's cart across requests.
	SessionCookie = "zoo_session"

	// SessionKey is where handlers read the session ID from gin's context.
	SessionKey = "session_id"

	sessionMaxAge = 60 * 60 * 24 // 24 hours, matches the cart TTL
)

// EnsureSession issues a session cookie on first visit and exposes the
// session ID to handlers.
func EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}
		c.Set(SessionKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session ID placed on the context by EnsureSession.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
