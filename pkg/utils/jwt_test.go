package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyTokens(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)

	access, refresh, expiresAt, err := m.GenerateTokens(7, "0xabc")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := m.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "0xabc", claims.WalletAddress)
	assert.Equal(t, TokenTypeAccess, claims.Type)

	claims, err = m.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)

	_, err = m.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestVerifyRejectsExpiredAndForeignTokens(t *testing.T) {
	m := NewJWTManager("secret", time.Minute, time.Hour)
	access, _, _, err := m.GenerateTokens(1, "0xabc")
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = m.VerifyAccessToken(access)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	other := NewJWTManager("other", time.Minute, time.Hour)
	_, err = other.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}
