package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/oakbridge/abc-dashboard/internal/session"
)

const (
	sessionHeader = "X-Session-ID"

	// ContextSessionKey is the gin context key holding the resolved session.
	ContextSessionKey = "nav_session"
)

// Session attaches the caller's navigation session to the request context,
// creating one when the header is absent or stale, and echoes the id back
// so clients can persist it.
func Session(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := manager.GetOrCreate(c.GetHeader(sessionHeader))
		c.Set(ContextSessionKey, sess)
		c.Writer.Header().Set(sessionHeader, sess.ID)
		c.Next()
	}
}

// SessionFromContext returns the session attached by the middleware, or
// nil when the middleware did not run.
func SessionFromContext(c *gin.Context) *session.Session {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil
	}
	sess, ok := value.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
