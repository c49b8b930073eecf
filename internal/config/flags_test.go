package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseFlags([]string{
		"-a", "localhost:8081",
		"-d", "postgres://u:p@localhost/db",
		"-bcrypt-cost", "11",
		"-environment", "production",
		"-request-timeout", "1m",
		"-session-lifetime", "48h",
		"-keep-alive-url", "https://example.com/ping",
		"-keep-alive-interval", "5m",
	})

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://u:p@localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, 11, cfg.App.BcryptCost)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, 48*time.Hour, cfg.Session.Lifetime)
	assert.Equal(t, "https://example.com/ping", cfg.Workers.KeepAliveURL)
	assert.Equal(t, 5*time.Minute, cfg.Workers.KeepAliveInterval)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg := parseFlags(nil)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.App.BcryptCost)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "localhost with port", input: "localhost:8080", wantErr: false},
		{name: "ip with port", input: "127.0.0.1:9000", wantErr: false},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}
