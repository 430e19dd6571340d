package session

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/helpdesk-portal/internal/config"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

// Claims is the JWT payload issued by the helpdesk backend at login.
type Claims struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	UUID  string   `json:"uuid"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Manager reads and writes the session cookie and decodes its claims.
//
// Tokens are decoded without signature verification: the cookie is
// HttpOnly/Secure/SameSite=Strict and the backend re-verifies the token on
// every proxied call, answering 401 when it is invalid or expired.
type Manager struct {
	cfg    config.SessionConfig
	parser *jwt.Parser
}

// NewManager builds a session manager from config.
func NewManager(cfg config.SessionConfig) *Manager {
	return &Manager{cfg: cfg, parser: jwt.NewParser()}
}

// Token reads the raw session token from the request cookie. A missing
// cookie is reported as an expired-auth error so callers redirect to login.
func (m *Manager) Token(c *fiber.Ctx) (string, error) {
	token := c.Cookies(m.cfg.CookieName)
	if token == "" {
		return "", errs.NewAuthExpired("no session token")
	}
	return token, nil
}

// Decode extracts claims from a raw token without verifying the signature.
func (m *Manager) Decode(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := m.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

// Claims reads and decodes the session cookie in one step.
func (m *Manager) Claims(c *fiber.Ctx) (*Claims, error) {
	token, err := m.Token(c)
	if err != nil {
		return nil, err
	}
	claims, err := m.Decode(token)
	if err != nil {
		return nil, errs.NewAuthExpired("undecodable session token")
	}
	return claims, nil
}

// SetToken stores a fresh backend-issued token in the session cookie.
func (m *Manager) SetToken(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// Clear deletes the session cookie.
func (m *Manager) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
