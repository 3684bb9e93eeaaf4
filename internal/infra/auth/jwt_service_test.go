package auth

import (
	"testing"
	"time"

	"sellbase/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: ttl},
	}
	cfg.SecretKey.Access = "test_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndVerifyToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(0))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.IssueToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	gotID, err := jwtService.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(0))
	require.NoError(t, err)

	gotID, err := jwtService.VerifyToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, gotID)
}

func TestJWTService_WrongSigningKey(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig(0))
	require.NoError(t, err)

	otherCfg := newTestJWTConfig(0)
	otherCfg.SecretKey.Access = "a_completely_different_secret_key"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.IssueToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(-time.Minute))
	require.NoError(t, err)

	token, err := jwtService.IssueToken(uuid.New())
	require.NoError(t, err)

	_, err = jwtService.VerifyToken(token)
	assert.Error(t, err)
}
