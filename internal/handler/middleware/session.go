package middleware

import (
	"golden-key-funnel/internal/pkg/config"
	"golden-key-funnel/internal/pkg/cookie"
	"golden-key-funnel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader lets clients that cannot keep cookies carry the session scope explicitly.
const SessionHeader = "X-Session-ID"

const ctxSessionRefKey = "session_ref"

type SessionMiddleware struct {
	cookieCfg config.CookieConfig
}

func NewSessionMiddleware(cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{cookieCfg: cfg.Cookie}
}

// Ensure resolves the session and visitor scopes of the request, issuing fresh ids when the
// client has none. Ids that are not UUIDs are replaced.
func (m *SessionMiddleware) Ensure() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if !isID(sessionID) {
			sessionID = cookie.GetSessionID(c)
		}
		if !isID(sessionID) {
			sessionID = uuid.NewString()
			cookie.SetSessionCookie(c, m.cookieCfg, sessionID)
		}

		visitorID := cookie.GetVisitorID(c)
		if !isID(visitorID) {
			visitorID = uuid.NewString()
			cookie.SetVisitorCookie(c, m.cookieCfg, visitorID)
		}

		c.Header(SessionHeader, sessionID)
		c.Set(ctxSessionRefKey, commands.SessionRef{SessionID: sessionID, VisitorID: visitorID})
		c.Next()
	}
}

func GetSessionRef(c *gin.Context) (commands.SessionRef, bool) {
	v, exists := c.Get(ctxSessionRefKey)
	if !exists {
		return commands.SessionRef{}, false
	}
	ref, ok := v.(commands.SessionRef)
	return ref, ok
}

func isID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
