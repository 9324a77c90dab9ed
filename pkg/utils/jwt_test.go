package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "laura@example.com", "admin")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "laura@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateAccessTokenReportsExpiry(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "laura@example.com", "staff")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestExtractClaimsReadsExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute, 24*time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "laura@example.com", "staff")
	require.NoError(t, err)

	claims, err := m.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "laura@example.com", claims.Email)
}

func TestExtractClaimsRejectsWrongKey(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("another", time.Hour, 24*time.Hour)

	token, err := other.GenerateAccessToken(uuid.New(), "laura@example.com", "staff")
	require.NoError(t, err)

	_, err = m.ExtractClaims(token)
	assert.Error(t, err)
}
