package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseFlags([]string{
		"-a", "0.0.0.0:9000",
		"-d", "postgres://localhost/identity",
		"-c", "/etc/identity/config.json",
		"-password-hash-cost", "10",
		"-token-sign-key", "secret",
		"-token-issuer", "identity-server",
		"-token-duration", "45m",
		"-request-timeout", "15s",
	})

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/identity", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/identity/config.json", cfg.JSONFilePath)
	assert.Equal(t, 10, cfg.Auth.PasswordHashCost)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "identity-server", cfg.Auth.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg := parseFlags(nil)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Auth.TokenDuration)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg := parseFlags([]string{"-config", "cfg.json"})
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}
