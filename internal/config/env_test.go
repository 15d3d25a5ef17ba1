package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "identity-server")
	t.Setenv("AUTH_TOKEN_DURATION", "1h")
	t.Setenv("AUTH_PASSWORD_HASH_COST", "12")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/identity")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "identity-server", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 12, cfg.Auth.PasswordHashCost)
	assert.Equal(t, "postgres://localhost/identity", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
