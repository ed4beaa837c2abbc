package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tk := NewTokens("secret", time.Hour)

	raw, err := tk.Issue("u1", "ana@example.com", "Ana", "Lopez")
	require.NoError(t, err)

	claims, err := tk.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.ID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "Lopez", claims.Surname)
}

func TestTokenExpired(t *testing.T) {
	tk := NewTokens("secret", -time.Minute)
	raw, err := tk.Issue("u1", "ana@example.com", "Ana", "Lopez")
	require.NoError(t, err)

	_, err = tk.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	raw, err := NewTokens("secret", time.Hour).Issue("u1", "ana@example.com", "Ana", "Lopez")
	require.NoError(t, err)

	_, err = NewTokens("other", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMalformed(t *testing.T) {
	_, err := NewTokens("secret", time.Hour).Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
