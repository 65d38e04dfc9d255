package middleware

import (
	"log/slog"
	"net/http"

	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/cookie"
	"tripdesk/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

const (
	ctxEmailKey = "session_email"

	LoginPath = "/loginPage"
	HomePath  = "/"
)

type SessionMiddleware struct {
	sessions *session.Service
}

func NewSessionMiddleware(sessions *session.Service) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession gates every console route. The session cookie is re-read on
// each request; there is no server-side session cache, so an expired or
// tampered cookie fails here and nowhere else. The sealed upstream bearer
// token is placed on the request context for the gateway layer.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)
		if token == "" {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		claims, err := m.sessions.Validate(token)
		if err != nil {
			slog.Warn("session validation failed", "error", err.Error())
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		c.Set(ctxEmailKey, claims.Email)
		ctx := upstream.WithToken(c.Request.Context(), claims.UpstreamToken)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RedirectIfAuthenticated keeps a signed-in operator off the login screen.
func (m *SessionMiddleware) RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)
		if token == "" {
			c.Next()
			return
		}
		if _, err := m.sessions.Validate(token); err != nil {
			c.Next()
			return
		}
		c.Redirect(http.StatusSeeOther, HomePath)
		c.Abort()
	}
}

func GetSessionEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
