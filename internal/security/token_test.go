package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partyplanner-backend/internal/security"
)

const testSecret = "a-test-secret-that-is-long-enough!!"

func TestGenerateAndValidateToken(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 15*time.Minute)

	token, err := tm.GenerateAccessToken(3, "user@example.com", true)
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(3), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "partyplanner", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 15*time.Minute)
	other := security.NewTokenManager("a-different-secret-also-long-enough", 15*time.Minute)

	token, err := tm.GenerateAccessToken(3, "user@example.com", false)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	tm := security.NewTokenManager(testSecret, -time.Minute)

	token, err := tm.GenerateAccessToken(3, "user@example.com", false)
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	tm := security.NewTokenManager(testSecret, 15*time.Minute)

	_, err := tm.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestPasswordHasherRoundTrip(t *testing.T) {
	hasher := security.NewPasswordHasher()

	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, hasher.Verify("hunter2", hash))
	assert.False(t, hasher.Verify("wrong", hash))
}
