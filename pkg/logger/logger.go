package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// TenantKey is the context key for tenant
	TenantKey ContextKey = "tenant"
	// UsernameKey is the context key for username
	UsernameKey ContextKey = "username"
)

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// piiPatterns are redacted from every message before it reaches a handler.
var piiPatterns = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), "[SSN-REDACTED]"},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[EMAIL-REDACTED]"},
	{regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`), "[PHONE-REDACTED]"},
	{regexp.MustCompile(`\b\d{5}(-\d{4})?\b`), "[ZIP-REDACTED]"},
}

// Init initializes the global slog logger with the given configuration
func Init(cfg *Config) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// Redact removes common PII patterns (SSN, email, phone, ZIP) from a string.
func Redact(text string) string {
	result := text
	for _, p := range piiPatterns {
		result = p.pattern.ReplaceAllString(result, p.replacement)
	}
	return result
}

// SafeError returns a user-safe description of an error with PII
// redacted, never user-entered data verbatim.
func SafeError(err error) string {
	if err == nil {
		return ""
	}
	return Redact(fmt.Sprintf("%v", err))
}

// WithContext returns a logger with context values extracted
func WithContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		logger = logger.With("request_id", requestID)
	}
	if tenant, ok := ctx.Value(TenantKey).(string); ok && tenant != "" {
		logger = logger.With("tenant", tenant)
	}
	if username, ok := ctx.Value(UsernameKey).(string); ok && username != "" {
		logger = logger.With("username", username)
	}

	return logger
}

// Info logs at info level with context. The message is redacted.
func Info(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Info(Redact(msg), args...)
}

// Debug logs at debug level with context. The message is redacted.
func Debug(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Debug(Redact(msg), args...)
}

// Warn logs at warn level with context. The message is redacted.
func Warn(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Warn(Redact(msg), args...)
}

// Error logs at error level with context. The message is redacted.
func Error(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Error(Redact(msg), args...)
}
