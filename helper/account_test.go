package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steellight541/cinema-app/constants"
	"github.com/steellight541/cinema-app/model"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(model.User{ID: 3, Username: "manager", Role: constants.ROLE_MANAGER})
	require.NoError(t, err)

	parsed, err := ParseToken(token)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestSeedUsersAndLookup(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())

	SeedUsers()

	user, err := GetUserByUsername("manager")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, constants.ROLE_MANAGER, user.Role)
	assert.True(t, CheckPasswordHash("password123", user.Password))

	missing, err := GetUserByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
