// internal/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"democracy-score/internal/config"
)

func testConfig(expiresIn time.Duration) config.Config {
	return config.Config{
		JWTSecret:    "test-secret",
		JWTExpiresIn: expiresIn,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService(testConfig(time.Hour))

	token, err := ts.GenerateToken("user-abc-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ts.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-abc-123", userID)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	ts := NewTokenService(testConfig(-time.Minute))

	token, err := ts.GenerateToken("user-abc-123")
	require.NoError(t, err)

	_, err = ts.ParseToken(token)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	ts := NewTokenService(testConfig(time.Hour))
	other := NewTokenService(config.Config{JWTSecret: "other-secret", JWTExpiresIn: time.Hour})

	token, err := ts.GenerateToken("user-abc-123")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	ts := NewTokenService(testConfig(time.Hour))
	_, err := ts.ParseToken("not-a-token")
	assert.Error(t, err)
}
