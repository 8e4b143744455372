// Package session handles the login cookie carrying the session token.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kossaiRedou/EasInvoice/internal/config"
)

// DefaultCookieName is the browser cookie holding the raw session token.
const DefaultCookieName = "_sid"

// Manager reads and writes the session cookie. The cookie is HttpOnly
// and SameSite Lax; the Secure flag follows deployment config so local
// plain-HTTP development keeps working.
type Manager struct {
	name   string
	secure bool
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{
		name:   DefaultCookieName,
		secure: cfg.AuthCookieSecure,
	}
}

func (m *Manager) CookieName() string { return m.name }

// ReadToken returns the raw token from the request cookie, if any.
func (m *Manager) ReadToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie(m.name)
	if err != nil || strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}

// Set writes the cookie with a max-age matching the session expiry.
func (m *Manager) Set(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.name, token, maxAge, "/", "", m.secure, true)
}

// Clear expires the cookie immediately.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.name, "", -1, "/", "", m.secure, true)
}
