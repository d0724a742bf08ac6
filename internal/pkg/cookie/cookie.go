package cookie

import (
	"net/http"

	"golden-key-funnel/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName carries the tab/browser-session scope; it has no max-age.
	SessionCookieName = "gk_session"
	// VisitorCookieName carries the durable scope shared by every tab of a browser.
	VisitorCookieName = "gk_visitor"
)

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, sessionID string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionCookieName,
		sessionID,
		0, // expires with the browser session
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func SetVisitorCookie(c *gin.Context, cfg config.CookieConfig, visitorID string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		VisitorCookieName,
		visitorID,
		int(cfg.VisitorMaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetSessionID(c *gin.Context) string {
	id, _ := c.Cookie(SessionCookieName)
	return id
}

func GetVisitorID(c *gin.Context) string {
	id, _ := c.Cookie(VisitorCookieName)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
