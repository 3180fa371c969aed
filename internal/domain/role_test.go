package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, name := range []string{"USER", "SUPPORT", "MANAGER"} {
		role, err := ParseRole(name)
		require.NoError(t, err)
		assert.Equal(t, Role(name), role)
	}

	_, err := ParseRole("manager")
	assert.Error(t, err)

	_, err = ParseRole("ADMIN")
	assert.Error(t, err)
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleSupport.Valid())
	assert.True(t, RoleManager.Valid())
	assert.False(t, Role("").Valid())
}
