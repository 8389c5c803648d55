// Package config loads process-wide configuration from the environment.
// The resulting Config is immutable and passed explicitly to constructors.
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// DefaultAPIBaseURL is the public GitHub API endpoint. Override with
// GITHUB_API_BASE_URL for GitHub Enterprise deployments.
const DefaultAPIBaseURL = "https://api.github.com"

// Config holds all environment-driven settings, read once at startup.
type Config struct {
	Token               string     // GITHUB_TOKEN, optional
	APIBaseURL          string     // GITHUB_API_BASE_URL
	LogLevel            slog.Level // LOG_LEVEL
	Port                string     // PORT
	ServerMode          bool       // SERVER_MODE: HTTP transport instead of stdio
	FallbackConcurrency int        // FALLBACK_CONCURRENCY: parallel per-repo doc checks
}

// Load reads configuration from the environment. A missing GITHUB_TOKEN is
// not an error (unauthenticated mode with lower rate limits); callers are
// expected to log a warning via HasToken.
func Load() (Config, error) {
	cfg := Config{
		Token:               os.Getenv("GITHUB_TOKEN"),
		APIBaseURL:          getEnv("GITHUB_API_BASE_URL", DefaultAPIBaseURL),
		Port:                getEnv("PORT", "8000"),
		ServerMode:          os.Getenv("SERVER_MODE") == "true",
		FallbackConcurrency: 4,
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	if v := os.Getenv("FALLBACK_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, errors.New("FALLBACK_CONCURRENCY must be a positive integer")
		}
		cfg.FallbackConcurrency = n
	}

	return cfg, nil
}

// HasToken reports whether a bearer token is configured.
func (c Config) HasToken() bool {
	return c.Token != ""
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.New("LOG_LEVEL must be one of debug, info, warn, error")
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
