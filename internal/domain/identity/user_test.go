package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		u, err := NewUser("Carla", "carla@petalia.com.br", "s3cret-pass", RoleOperator)
		require.NoError(t, err)
		assert.True(t, u.IsActive)
		assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
		assert.True(t, u.VerifyPassword("s3cret-pass"))
		assert.False(t, u.VerifyPassword("wrong"))
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("Carla", "carla@petalia.com.br", "short", RoleAdmin)
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("Carla", "carla@petalia.com.br", "s3cret-pass", Role("GUEST"))
		assert.Error(t, err)
	})
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := NewUser("Carla", "carla@petalia.com.br", "s3cret-pass", RoleOperator)
	require.NoError(t, err)

	assert.Error(t, u.ChangePassword("wrong", "new-password"))
	require.NoError(t, u.ChangePassword("s3cret-pass", "new-password"))
	assert.True(t, u.VerifyPassword("new-password"))
}
