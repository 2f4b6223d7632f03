// Package observability provides logging and metrics hooks for keyed
// containers.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//
// Both are opt-in. Every helper accepts a nil logger, and NoopMetrics is
// the default recorder.
package observability

import (
	"log/slog"
)

// EnrichLogger returns logger with the container path attached.
// Containers log through an enriched logger, so the other helpers do not
// take a path.
//
// Example:
//
//	enriched := EnrichLogger(logger, "database.primary")
//	enriched.Debug("reading") // includes path
func EnrichLogger(logger *slog.Logger, path string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("path", path))
}

// LogMerge logs entries merged into a container.
func LogMerge(logger *slog.Logger, entries int) {
	if logger == nil {
		return
	}
	logger.Debug("entries merged",
		slog.Int("entries", entries),
	)
}

// LogChildWrapped logs the creation of a child container for a nested map.
func LogChildWrapped(logger *slog.Logger, path string, entries int) {
	if logger == nil {
		return
	}
	logger.Debug("child wrapped",
		slog.String("child_path", path),
		slog.Int("entries", entries),
	)
}

// LogAccessorError logs a rejected accessor call.
func LogAccessorError(logger *slog.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("accessor rejected",
		slog.String("accessor", name),
		slog.String("error", err.Error()),
	)
}

// LogDecode logs a decoded document.
func LogDecode(logger *slog.Logger, format string, entries int) {
	if logger == nil {
		return
	}
	logger.Debug("document decoded",
		slog.String("format", format),
		slog.Int("entries", entries),
	)
}
