package auth

import (
	"crypto/subtle"
	"time"

	"github.com/velandev/website/internal/pkg/apperrors"
)

// SessionCookieName is the cookie carrying the admin session token
const SessionCookieName = "admin_session"

// SessionConfig holds the two configured admin secrets and the cookie
// lifetime. The session token is an independent secret, not derived from
// the password.
type SessionConfig struct {
	Password     string
	SessionToken string
	MaxAge       time.Duration
}

// SessionGate is the shared-secret authorization check guarding job
// mutations. Every authenticated admin shares the same token for the
// process lifetime; there is no per-session revocation.
type SessionGate struct {
	config SessionConfig
}

// NewSessionGate creates a new SessionGate
func NewSessionGate(config SessionConfig) *SessionGate {
	if config.MaxAge <= 0 {
		config.MaxAge = 8 * time.Hour
	}
	return &SessionGate{config: config}
}

// Configured reports whether both admin secrets are present
func (g *SessionGate) Configured() bool {
	return g.config.Password != "" && g.config.SessionToken != ""
}

// CheckCredential compares the presented password against the configured
// secret and returns the session token to issue on success. A missing
// secret is a server misconfiguration, distinct from a wrong password.
func (g *SessionGate) CheckCredential(password string) (string, error) {
	if !g.Configured() {
		return "", apperrors.ErrAdminNotConfigured
	}

	if password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(g.config.Password)) != 1 {
		return "", apperrors.ErrInvalidCredentials
	}

	return g.config.SessionToken, nil
}

// Authorize reports whether the presented token exactly equals the
// configured session token. An unconfigured gate authorizes nothing.
func (g *SessionGate) Authorize(presentedToken string) bool {
	if !g.Configured() || presentedToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presentedToken), []byte(g.config.SessionToken)) == 1
}

// MaxAge returns the cookie lifetime. Expiry is enforced by the cookie
// mechanism itself; the server keeps no session state.
func (g *SessionGate) MaxAge() time.Duration {
	return g.config.MaxAge
}
