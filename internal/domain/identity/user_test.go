package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates a user with hashed password", func(t *testing.T) {
		u, derr := NewUser("Alice", "alice@example.com", "secret-pass", RoleHRAdmin)
		require.Nil(t, derr)

		assert.Equal(t, "Alice", u.Name)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, RoleHRAdmin, u.Role)
		assert.NotEqual(t, "secret-pass", u.PasswordHash)
		assert.True(t, u.VerifyPassword("secret-pass"))
	})

	t.Run("defaults an empty role to admin", func(t *testing.T) {
		u, derr := NewUser("Alice", "alice@example.com", "secret-pass", "")
		require.Nil(t, derr)

		assert.Equal(t, RoleAdmin, u.Role)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		_, derr := NewUser("Alice", "alice@example.com", "secret-pass", "superuser")

		require.NotNil(t, derr)
		assert.Equal(t, "INVALID_INPUT", derr.Code)
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		_, derr := NewUser("", "alice@example.com", "secret-pass", "")

		require.NotNil(t, derr)
		assert.Equal(t, "INVALID_INPUT", derr.Code)
	})

	t.Run("rejects malformed email addresses", func(t *testing.T) {
		for _, email := range []string{"", "alice", "alice@", "@example.com", "alice@example"} {
			_, derr := NewUser("Alice", email, "secret-pass", "")
			assert.NotNil(t, derr, "email %q should be rejected", email)
		}
	})
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{
		RoleAdmin, RoleBasetypeAdmin, RoleHRAdmin,
		RoleOrganizationAdmin, RoleOrganizationUser, RolePersonUser,
	} {
		assert.True(t, IsValidRole(role), role)
	}

	assert.False(t, IsValidRole("root"))
	assert.False(t, IsValidRole(""))
	assert.False(t, IsValidRole("Admin"))
}
