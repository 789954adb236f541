package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridwanfathin/whatsapp-billing/internal/editor"
	"github.com/ridwanfathin/whatsapp-billing/internal/session"
)

const (
	// SessionCookie holds the session id for browsers
	SessionCookie = "billing_session"
	// SessionHeader holds the session id for API clients
	SessionHeader = "X-Session-Id"

	editorKey    = "editor"
	sessionIDKey = "sessionID"
)

// SessionConfig holds configuration for the session middleware
type SessionConfig struct {
	Store        *session.Store
	CookieMaxAge int
	SecureCookie bool
}

// Session resolves the caller's editing session from the session header or
// cookie, starting a new session when none is live, and stores its editor in
// the context for handlers to use. The cookie is reissued on every request so
// its lifetime slides with the store's idle TTL.
func Session(config SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id, _ = c.Cookie(SessionCookie)
		}

		id, ed, _ := config.Store.GetOrCreate(id)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, config.CookieMaxAge, "/", "", config.SecureCookie, true)
		c.Header(SessionHeader, id)

		c.Set(sessionIDKey, id)
		c.Set(editorKey, ed)
		c.Next()
	}
}

// EditorFrom returns the editor stored by Session
func EditorFrom(c *gin.Context) (*editor.Editor, bool) {
	v, ok := c.Get(editorKey)
	if !ok {
		return nil, false
	}
	ed, ok := v.(*editor.Editor)
	return ed, ok
}

// SessionIDFrom returns the session id stored by Session
func SessionIDFrom(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
