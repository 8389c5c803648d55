package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_API_BASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PORT", "")
	t.Setenv("SERVER_MODE", "")
	t.Setenv("FALLBACK_CONCURRENCY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "8000", cfg.Port)
	assert.False(t, cfg.ServerMode)
	assert.Equal(t, 4, cfg.FallbackConcurrency)
	assert.False(t, cfg.HasToken())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("GITHUB_API_BASE_URL", "https://github.example.com/api/v3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_MODE", "true")
	t.Setenv("FALLBACK_CONCURRENCY", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.HasToken())
	assert.Equal(t, "https://github.example.com/api/v3", cfg.APIBaseURL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.ServerMode)
	assert.Equal(t, 8, cfg.FallbackConcurrency)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidConcurrency(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FALLBACK_CONCURRENCY", "0")

	_, err := Load()
	assert.Error(t, err)
}
