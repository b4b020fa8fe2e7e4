package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/myusername/pbp-indicators/internal/config"
)

// SetupLogger builds the service logger and installs it as the slog default
func SetupLogger(cfg config.LoggingConfig, serviceName string) *slog.Logger {
	return setupLoggerWithWriter(cfg, serviceName, os.Stderr)
}

func setupLoggerWithWriter(cfg config.LoggingConfig, serviceName string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With("service", serviceName)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
