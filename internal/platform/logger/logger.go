package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/tracklet/tracker-api/internal/config"
)

// contextKey is the private type for logger context values.
type contextKey struct{}

// loggerKey is the context key under which a request-scoped logger travels.
var loggerKey = contextKey{}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the
// application.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	// Parse the log level from configuration (case-insensitive)
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// If the log level is invalid, use info level as default and log a warning
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// JSON handler on stdout; one line per record for log shippers
	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler)

	// Set this logger as the default for the application so the slog
	// package functions (slog.Info, slog.Error, etc.) use it directly.
	slog.SetDefault(logger)

	return logger, nil
}

// WithLogger returns a context carrying the given logger. Middleware uses
// this to attach a request-scoped logger (e.g. with a trace ID already
// bound) for handlers further down the chain.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger from the context, if one was attached.
func FromContext(ctx context.Context) (*slog.Logger, bool) {
	log, ok := ctx.Value(loggerKey).(*slog.Logger)
	return log, ok
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the given default when the context carries none.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log, ok := FromContext(ctx); ok {
		return log
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
