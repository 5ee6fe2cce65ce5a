package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reqmaster-ai/reqmaster-backend/internal/session"
)

// WithSession resolves the session token and stores the token, username
// and guest flag in the request context for downstream handlers.
func WithSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("X-Session-Token"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing session token"})
			return
		}

		st, err := sessions.Snapshot(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid session token"})
			return
		}

		c.Set("session_token", token)
		c.Set("username", st.Username)
		c.Set("guest", st.Guest)
		c.Next()
	}
}
