package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionIDKey is the gin context key holding the storefront session id.
const SessionIDKey = "session_id"

// SessionHeader carries the browser's opaque session id. Carts and
// saved addresses are keyed by it.
const SessionHeader = "X-Session-ID"

// Session resolves the session id from the request header, minting a
// fresh one when absent, and echoes it back on the response.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Set(SessionIDKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// RequireSession rejects requests that did not present a session id.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(SessionHeader) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + SessionHeader + " header"})
			c.Abort()
			return
		}
		c.Set(SessionIDKey, c.GetHeader(SessionHeader))
		c.Next()
	}
}

// SessionID extracts the resolved session id from the gin context.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(SessionIDKey); ok {
		return v.(string)
	}
	return c.GetHeader(SessionHeader)
}
