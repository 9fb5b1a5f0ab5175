package config

import (
	"log/slog"
	"os"
	"strings"
)

// SetupLogging configures the default slog logger from the loaded
// configuration. Unknown levels fall back to error: this is a CLI, and
// log noise on stderr competes with command output.
func SetupLogging(cfg *Config) {
	level := parseLevel(cfg.Logging.Level)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
