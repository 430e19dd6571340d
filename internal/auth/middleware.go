package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/session"
)

const (
	authorizationKey = "auth_authorization"
	tokenKey         = "auth_token"
)

// ExpiredRedirect is where detected authentication expiry sends the user.
const ExpiredRedirect = "/?session_expired=true"

// Middleware decodes the session cookie once per request and stores the
// caller's Authorization and raw token in request locals.
type Middleware struct {
	sessions *session.Manager
}

// NewMiddleware constructs middleware.
func NewMiddleware(sessions *session.Manager) *Middleware {
	return &Middleware{sessions: sessions}
}

// Handle enforces a valid session on protected routes. Missing or
// undecodable tokens redirect to the login landing with the expiry marker.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token, err := m.sessions.Token(c)
	if err != nil {
		return c.Redirect(ExpiredRedirect, fiber.StatusSeeOther)
	}
	claims, err := m.sessions.Decode(token)
	if err != nil {
		return c.Redirect(ExpiredRedirect, fiber.StatusSeeOther)
	}

	c.Locals(authorizationKey, NewAuthorization(claims))
	c.Locals(tokenKey, token)
	return c.Next()
}

// RequireRole gates a route on exact membership of one role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz, ok := FromContext(c)
		if !ok || !authz.Has(role) {
			return fiber.NewError(fiber.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

// FromContext retrieves the caller's Authorization.
func FromContext(c *fiber.Ctx) (*Authorization, bool) {
	val := c.Locals(authorizationKey)
	if val == nil {
		return nil, false
	}
	authz, ok := val.(*Authorization)
	return authz, ok
}

// TokenFromContext retrieves the raw bearer token for backend calls.
func TokenFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(tokenKey)
	if val == nil {
		return "", false
	}
	token, ok := val.(string)
	return token, ok
}
