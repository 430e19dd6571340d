package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/helpdesk-portal/internal/session"
)

func TestHasIsExactMembership(t *testing.T) {
	authz := NewAuthorization(&session.Claims{
		UUID:  "user-1",
		Roles: []string{"user", "sys_admin"},
	})

	assert.True(t, authz.Has(RoleUser))
	assert.True(t, authz.Has(RoleSysAdmin))

	// sys_admin does not imply team; the gate never infers hierarchy.
	assert.False(t, authz.Has(RoleTeam))
	assert.False(t, authz.Has(RoleSignup))
}

func TestHasOnNilAuthorization(t *testing.T) {
	var authz *Authorization
	assert.False(t, authz.Has(RoleUser))
}

func TestHasEmptyRoles(t *testing.T) {
	authz := NewAuthorization(&session.Claims{UUID: "user-1"})
	assert.False(t, authz.Has(RoleUser))
}

func TestRoles(t *testing.T) {
	authz := NewAuthorization(&session.Claims{Roles: []string{"user", "team"}})
	assert.ElementsMatch(t, []string{"user", "team"}, authz.Roles())
}
