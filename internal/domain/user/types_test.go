//go:build unit

package user_test

import (
	"testing"

	"grab-service/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"member", "operator", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	_, err = user.NewRole("")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestRole_CanValidate(t *testing.T) {
	assert.False(t, user.RoleMember.CanValidate())
	assert.True(t, user.RoleOperator.CanValidate())
	assert.True(t, user.RoleAdmin.CanValidate())
}
