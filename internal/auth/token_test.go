package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 168*time.Hour)

	token, exp, err := tm.GenerateToken(42, "dana@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), exp, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ManagerID)
	assert.Equal(t, "dana@example.com", claims.Email)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	token, _, err := tm.GenerateToken(1, "a@b.com")
	require.NoError(t, err)

	other := NewTokenManager("another-secret", time.Hour)
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	claims := &Claims{
		ManagerID: 1,
		Email:     "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	_, err := tm.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestVerifyCredential(t *testing.T) {
	assert.True(t, VerifyCredential("secret1", "secret1"))
	assert.False(t, VerifyCredential("secret1", "secret2"))
	assert.False(t, VerifyCredential("secret1", ""))
	assert.False(t, VerifyCredential("", "secret1"))
}
