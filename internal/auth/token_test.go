package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-ticket-api/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("unit-secret", 480)

	token, exp, err := tm.GenerateToken(7, domain.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), exp, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, domain.RoleManager, claims.Role)
	assert.Equal(t, "7", claims.Subject)
}

func TestTokenTTLDefaultsToEightHours(t *testing.T) {
	tm := NewTokenManager("unit-secret", 0)

	_, exp, err := tm.GenerateToken(1, domain.RoleUser)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), exp, time.Minute)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 60).GenerateToken(1, domain.RoleUser)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 60).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsUnknownRoleClaim(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)
	token, _, err := tm.GenerateToken(1, domain.Role("ADMIN"))
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)

	_, err := tm.ParseToken("not-a-jwt")
	assert.Error(t, err)
}
