package auth

import (
	"github.com/spec-kit/helpdesk-portal/internal/session"
)

// Role strings as the backend issues them inside the JWT roles claim.
const (
	RoleUser     = "user"
	RoleTeam     = "team"
	RoleSysAdmin = "sys_admin"
	RoleSignup   = "signup"
)

// Authorization carries the caller's canonical role set for one request.
// Checks are exact set membership; no hierarchy is inferred, so holding
// "sys_admin" does not satisfy a check for "team" unless the backend
// listed both.
type Authorization struct {
	UserID string
	Name   string
	Email  string
	roles  map[string]struct{}
}

// NewAuthorization builds an Authorization from decoded session claims.
func NewAuthorization(claims *session.Claims) *Authorization {
	roles := make(map[string]struct{}, len(claims.Roles))
	for _, role := range claims.Roles {
		roles[role] = struct{}{}
	}
	return &Authorization{
		UserID: claims.UUID,
		Name:   claims.Name,
		Email:  claims.Email,
		roles:  roles,
	}
}

// Has reports whether the role set contains exactly the given role.
func (a *Authorization) Has(role string) bool {
	if a == nil {
		return false
	}
	_, ok := a.roles[role]
	return ok
}

// Roles returns the role set as a slice, for logging and view models.
func (a *Authorization) Roles() []string {
	if a == nil {
		return nil
	}
	out := make([]string, 0, len(a.roles))
	for role := range a.roles {
		out = append(out, role)
	}
	return out
}
