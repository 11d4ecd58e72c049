package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records dispatcher metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordPost records one completed post and how many listeners it reached.
	RecordPost(ctx context.Context, tag string, delivered int, duration time.Duration)

	// RecordNotifyError records a listener that failed to handle an event.
	RecordNotifyError(ctx context.Context, tag, listener string)

	// RecordStalePurge records a reclaimed listener removed from the registry.
	RecordStalePurge(ctx context.Context, listener string)

	// RecordDropped records an event dropped by the depth guard.
	RecordDropped(ctx context.Context, tag string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	posts        metric.Int64Counter
	postLatency  metric.Float64Histogram
	deliveries   metric.Int64Counter
	notifyErrors metric.Int64Counter
	stalePurged  metric.Int64Counter
	dropped      metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("wumpus")

	posts, err := meter.Int64Counter("wumpus.event.posts",
		metric.WithDescription("Number of posted events"),
	)
	if err != nil {
		return nil, err
	}

	postLatency, err := meter.Float64Histogram("wumpus.event.post.latency_ms",
		metric.WithDescription("Time spent delivering one event to every listener"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	deliveries, err := meter.Int64Counter("wumpus.event.deliveries",
		metric.WithDescription("Number of Notify calls made"),
	)
	if err != nil {
		return nil, err
	}

	notifyErrors, err := meter.Int64Counter("wumpus.event.notify_errors",
		metric.WithDescription("Number of listener Notify failures"),
	)
	if err != nil {
		return nil, err
	}

	stalePurged, err := meter.Int64Counter("wumpus.listener.stale_purged",
		metric.WithDescription("Number of reclaimed listeners removed from the registry"),
	)
	if err != nil {
		return nil, err
	}

	dropped, err := meter.Int64Counter("wumpus.event.dropped",
		metric.WithDescription("Number of events dropped by the post depth guard"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		posts:        posts,
		postLatency:  postLatency,
		deliveries:   deliveries,
		notifyErrors: notifyErrors,
		stalePurged:  stalePurged,
		dropped:      dropped,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordPost records a post.
func (m *otelMetrics) RecordPost(ctx context.Context, tag string, delivered int, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("tag", tag))
	m.posts.Add(ctx, 1, attrs)
	m.deliveries.Add(ctx, int64(delivered), attrs)
	m.postLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}

// RecordNotifyError records a listener failure.
func (m *otelMetrics) RecordNotifyError(ctx context.Context, tag, listener string) {
	m.notifyErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tag", tag),
		attribute.String("listener", listener),
	))
}

// RecordStalePurge records a stale listener purge.
func (m *otelMetrics) RecordStalePurge(ctx context.Context, listener string) {
	m.stalePurged.Add(ctx, 1, metric.WithAttributes(
		attribute.String("listener", listener),
	))
}

// RecordDropped records a dropped event.
func (m *otelMetrics) RecordDropped(ctx context.Context, tag string) {
	m.dropped.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tag", tag),
	))
}
