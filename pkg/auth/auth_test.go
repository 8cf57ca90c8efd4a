package auth_test

import (
	"testing"
	"time"

	"go-jobboard-backend/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenIssuer(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	issuer, err := auth.NewTokenIssuer("test-secret", auth.DefaultTokenTTL)
	require.NoError(t, err)
	issuer = issuer.WithClock(fixedClock(issuedAt))

	token, expiresAt, err := issuer.Issue("user-1")
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(7*24*time.Hour), expiresAt)

	t.Run("decodes to the user id", func(t *testing.T) {
		userID, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("valid one second before expiry", func(t *testing.T) {
		userID, err := issuer.WithClock(fixedClock(expiresAt.Add(-time.Second))).Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("expired one second after expiry", func(t *testing.T) {
		_, err := issuer.WithClock(fixedClock(expiresAt.Add(time.Second))).Verify(token)
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other, err := auth.NewTokenIssuer("other-secret", auth.DefaultTokenTTL)
		require.NoError(t, err)
		_, err = other.WithClock(fixedClock(issuedAt)).Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("rejects a token without expiry", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "user-1"}).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = issuer.Verify(raw)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := issuer.Verify("not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	_, err := auth.NewTokenIssuer("", time.Hour)
	assert.ErrorIs(t, err, auth.ErrMissingSecret)
}

func TestHasher(t *testing.T) {
	h := auth.NewHasher(4)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	ok, err := h.Compare(hash, "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Compare("not-a-bcrypt-hash", "s3cret")
	assert.Error(t, err)
}
