package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokedex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 50051, cfg.Server.Port)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.PokeAPI.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.PokeAPI.HTTPTimeout)
	assert.Equal(t, 15*time.Minute, cfg.Redis.SessionTTL)
	assert.False(t, cfg.UseRedis())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().PokeAPI, cfg.PokeAPI)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 6000
pokeapi:
  base_url: http://localhost:8080/api/v2
  http_timeout: 5s
redis:
  addr: localhost:6379
  session_ttl: 2m
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080/api/v2", cfg.PokeAPI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.PokeAPI.HTTPTimeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Redis.SessionTTL)
	assert.True(t, cfg.UseRedis())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "redis:\n  addr: cache:6379\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, Default().PokeAPI.BaseURL, cfg.PokeAPI.BaseURL)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://env.test/api/v2")
	t.Setenv(EnvRedisAddr, "env-redis:6379")
	t.Setenv(EnvLogLevel, "warn")

	path := writeConfig(t, "pokeapi:\n  base_url: http://file.test/api/v2\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.test/api/v2", cfg.PokeAPI.BaseURL)
	assert.Equal(t, "env-redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(error) bool
		contain string
	}{
		{
			name:    "malformed yaml",
			content: "server: [",
			check:   errors.IsInvalidArgument,
			contain: "parsing config file",
		},
		{
			name:    "bad port",
			content: "server:\n  port: 70000\n",
			check:   errors.IsInvalidArgument,
			contain: "server.port",
		},
		{
			name:    "relative base url",
			content: "pokeapi:\n  base_url: /api/v2\n",
			check:   errors.IsInvalidArgument,
			contain: "pokeapi.base_url",
		},
		{
			name:    "unknown log format",
			content: "log:\n  format: xml\n",
			check:   errors.IsInvalidArgument,
			contain: "log.format",
		},
		{
			name:    "unknown log level",
			content: "log:\n  level: loud\n",
			check:   errors.IsInvalidArgument,
			contain: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.Contains(t, err.Error(), tt.contain)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsNotFound(err))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
