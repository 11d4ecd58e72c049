// Package observability provides logging, metrics and tracing for the
// wumpus event dispatcher.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
)

// EnrichLogger adds dispatch context to a logger.
// Returns a new logger with post_id, cause_id and depth fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, postID, parentID, 2)
//	enriched.Info("reacting") // includes post_id, cause_id, depth
func EnrichLogger(logger *slog.Logger, postID, causeID string, depth int) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("post_id", postID),
		slog.String("cause_id", causeID),
		slog.Int("depth", depth),
	)
}

// LogEventPosted writes the diagnostic line for a posted event.
func LogEventPosted(logger *slog.Logger, postID, causeID, tag, text string, depth int) {
	if logger == nil {
		return
	}
	logger.Debug(" ** "+text,
		slog.String("tag", tag),
		slog.String("post_id", postID),
		slog.String("cause_id", causeID),
		slog.Int("depth", depth),
	)
}

// LogListenerRegistered logs a new registry entry.
func LogListenerRegistered(logger *slog.Logger, listener string) {
	if logger == nil {
		return
	}
	logger.Debug("listener registered",
		slog.String("listener", listener),
	)
}

// LogListenerUnregistered logs an explicit unregistration.
func LogListenerUnregistered(logger *slog.Logger, listener string) {
	if logger == nil {
		return
	}
	logger.Debug("listener unregistered",
		slog.String("listener", listener),
	)
}

// LogStaleListener logs the purge of a listener that was reclaimed
// without being unregistered.
func LogStaleListener(logger *slog.Logger, listener, tag string) {
	if logger == nil {
		return
	}
	logger.Debug("stale listener purged",
		slog.String("listener", listener),
		slog.String("tag", tag),
	)
}

// LogNotifyError logs a listener failure. Delivery continues.
func LogNotifyError(logger *slog.Logger, listener, tag string, err error) {
	if logger == nil {
		return
	}
	logger.Error("listener notify failed",
		slog.String("listener", listener),
		slog.String("tag", tag),
		slog.String("error", err.Error()),
	)
}

// LogDepthExceeded logs an event dropped by the re-entrancy guard.
func LogDepthExceeded(logger *slog.Logger, tag string, depth, maxDepth int) {
	if logger == nil {
		return
	}
	logger.Warn("event dropped: max post depth exceeded",
		slog.String("tag", tag),
		slog.Int("depth", depth),
		slog.Int("max_depth", maxDepth),
	)
}
