package event

import (
	"fmt"
	"log/slog"

	"github.com/randalmurphal/wumpus/pkg/wumpus/config"
	"github.com/randalmurphal/wumpus/pkg/wumpus/observability"
)

// DefaultMaxDepth is the default nesting limit for Post calls. Zero means
// unlimited: any finite chain of re-entrant posts is delivered in full.
const DefaultMaxDepth = 0

type dispatcherConfig struct {
	logger        *slog.Logger
	metrics       observability.MetricsRecorder
	spans         observability.SpanManager
	maxDepth      int
	quiet         map[Tag]bool // nil: use Tag.LowSignal
	recoverPanics bool
	onError       func(evt Event, listener string, err error)
}

func defaultDispatcherConfig() dispatcherConfig {
	return dispatcherConfig{
		metrics:       observability.NoopMetrics{},
		spans:         observability.NoopSpanManager{},
		maxDepth:      DefaultMaxDepth,
		recoverPanics: true,
	}
}

// Option configures a Dispatcher.
type Option func(*dispatcherConfig)

// WithLogger sets the logger for diagnostic output. A nil logger disables
// logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *dispatcherConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
func WithMetrics(enabled bool) Option {
	return func(c *dispatcherConfig) {
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder sets a specific metrics recorder.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(c *dispatcherConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing enables OpenTelemetry spans using the global tracer provider.
// Each Post becomes a span; nested posts become child spans.
func WithTracing(enabled bool) Option {
	return func(c *dispatcherConfig) {
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithMaxDepth sets how many Post calls may be nested inside one another.
// Posts beyond the limit are dropped with a warning. Zero disables the guard.
// Default: 0 (unlimited)
//
// The guard trades delivery for safety: set it only when a listener cycle
// could otherwise recurse forever.
//
// Depth is tracked through the context, so listeners must pass the context
// they were notified with to nested Post calls.
func WithMaxDepth(n int) Option {
	return func(c *dispatcherConfig) {
		if n >= 0 {
			c.maxDepth = n
		}
	}
}

// WithQuietTags replaces the set of tags that are posted without a
// diagnostic log line. By default the low-signal tags are quiet.
// Calling it with no tags logs every event.
func WithQuietTags(tags ...Tag) Option {
	return func(c *dispatcherConfig) {
		c.quiet = make(map[Tag]bool, len(tags))
		for _, t := range tags {
			c.quiet[t] = true
		}
	}
}

// WithPanicRecovery controls whether a panic in Notify is recovered and
// handled like a returned error. Default: true
//
// With recovery disabled the panic unwinds through Post and the remaining
// listeners are not notified.
func WithPanicRecovery(enabled bool) Option {
	return func(c *dispatcherConfig) {
		c.recoverPanics = enabled
	}
}

// WithErrorHandler registers a callback invoked for every listener failure,
// after it has been logged. The callback runs synchronously inside Post.
func WithErrorHandler(fn func(evt Event, listener string, err error)) Option {
	return func(c *dispatcherConfig) {
		c.onError = fn
	}
}

// OptionsFromConfig maps a dispatcher config section onto options.
//
// Recognised keys: max_depth, recover_panics, quiet_tags, metrics, tracing.
// Missing keys leave the defaults in place.
func OptionsFromConfig(cfg config.Config) ([]Option, error) {
	var opts []Option

	if cfg.Has("max_depth") {
		opts = append(opts, WithMaxDepth(cfg.Int("max_depth", DefaultMaxDepth)))
	}
	if cfg.Has("recover_panics") {
		opts = append(opts, WithPanicRecovery(cfg.Bool("recover_panics", true)))
	}
	if cfg.Has("quiet_tags") {
		names := cfg.StringSlice("quiet_tags", nil)
		if names == nil {
			return nil, fmt.Errorf("quiet_tags: expected a list of tag names")
		}
		tags := make([]Tag, 0, len(names))
		for _, name := range names {
			tag, err := ParseTag(name)
			if err != nil {
				return nil, fmt.Errorf("quiet_tags: %w", err)
			}
			tags = append(tags, tag)
		}
		opts = append(opts, WithQuietTags(tags...))
	}
	if cfg.Has("metrics") {
		opts = append(opts, WithMetrics(cfg.Bool("metrics", false)))
	}
	if cfg.Has("tracing") {
		opts = append(opts, WithTracing(cfg.Bool("tracing", false)))
	}

	return opts, nil
}
