package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour)

	token, err := mgr.GenerateAccessToken("user-1", "a@example.com")
	require.NoError(t, err)

	claims, err := mgr.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTManager_Expired(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour)
	mgr.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := mgr.GenerateAccessToken("user-1", "a@example.com")
	require.NoError(t, err)

	mgr.now = time.Now
	_, err = mgr.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret", time.Hour).GenerateAccessToken("user-1", "a@example.com")
	require.NoError(t, err)

	_, err = NewJWTManager("other", time.Hour).VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceAdapter_ParseAccessToken(t *testing.T) {
	svc := NewJWTService(NewJWTManager("secret", time.Hour))
	token, err := svc.GenerateAccessToken("user-9", "z@example.com")
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-9", claims.UserID)
	assert.Equal(t, "z@example.com", claims.Email)

	_, err = svc.ParseAccessToken("garbage")
	assert.Error(t, err)
}
