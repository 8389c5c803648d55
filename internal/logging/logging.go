// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

var programLevel = new(slog.LevelVar)

// Setup installs a JSON slog handler on stderr as the default logger.
// Stderr keeps log output off stdout, which stdio MCP transport owns.
func Setup(level slog.Level) {
	programLevel.Set(level)

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: programLevel,
	}))
	slog.SetDefault(logger)
}

// SetLevel adjusts the log level at runtime.
func SetLevel(level slog.Level) {
	programLevel.Set(level)
}
