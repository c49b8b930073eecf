package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost:5432/flashdeck")
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("APP_BCRYPT_COST", "12")
	t.Setenv("SESSION_LIFETIME", "12h")
	t.Setenv("SESSION_SECURE_COOKIES", "true")
	t.Setenv("WORKERS_KEEP_ALIVE_URL", "https://example.com/")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "postgres://u:p@localhost:5432/flashdeck", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, 12*time.Hour, cfg.Session.Lifetime)
	assert.True(t, cfg.Session.SecureCookies)
	assert.Equal(t, "https://example.com/", cfg.Workers.KeepAliveURL)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.App.BcryptCost)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
