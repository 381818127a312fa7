package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", 7*24*time.Hour)

	t.Run("round trips claims", func(t *testing.T) {
		tokenStr, expiresAt, err := svc.Issue("admin-1", "admin@x.com")
		require.NoError(t, err)
		require.NotEmpty(t, tokenStr)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, 5*time.Second)

		claims, err := svc.Verify(tokenStr)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", claims.AdminID)
		assert.Equal(t, "admin@x.com", claims.Email)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewService("another-secret", 7*24*time.Hour)
		tokenStr, _, err := other.Issue("admin-1", "admin@x.com")
		require.NoError(t, err)

		_, err = svc.Verify(tokenStr)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewService("test-secret", -time.Minute)
		tokenStr, _, err := expired.Issue("admin-1", "admin@x.com")
		require.NoError(t, err)

		_, err = svc.Verify(tokenStr)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		_, err := svc.Verify("not-a-jwt")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("rejects empty token", func(t *testing.T) {
		_, err := svc.Verify("")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		tokenStr, _, err := svc.Issue("admin-1", "admin@x.com")
		require.NoError(t, err)

		tampered := tokenStr[:len(tokenStr)-2] + "xx"
		_, err = svc.Verify(tampered)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
