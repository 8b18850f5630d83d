package auth

import (
	"testing"

	"roster/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_SignAndParse(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, svc)

	userID := uuid.New()

	token, err := svc.Sign(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.NotEqual(t, uuid.Nil, claims.TokenID)
}

func TestJWTService_SignIsUniquePerCall(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	userID := uuid.New()

	first, err := svc.Sign(userID)
	assert.NoError(t, err)
	second, err := svc.Sign(userID)
	assert.NoError(t, err)

	// Fresh token ID per issuance keeps tokens individually revocable.
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, svc.HashToken(first), svc.HashToken(second))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	claims, err := svc.Parse("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("another_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := issuer.Sign(uuid.New())
	assert.NoError(t, err)

	claims, err := verifier.Parse(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_HashToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	hash := svc.HashToken("some-token")
	assert.Len(t, hash, 64) // hex-encoded SHA-256
	assert.Equal(t, hash, svc.HashToken("some-token"))
	assert.NotEqual(t, hash, svc.HashToken("another-token"))
}
