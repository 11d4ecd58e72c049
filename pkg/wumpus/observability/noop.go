package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
type NoopMetrics struct{}

var _ MetricsRecorder = NoopMetrics{}

// RecordPost does nothing.
func (NoopMetrics) RecordPost(_ context.Context, _ string, _ int, _ time.Duration) {}

// RecordNotifyError does nothing.
func (NoopMetrics) RecordNotifyError(_ context.Context, _, _ string) {}

// RecordStalePurge does nothing.
func (NoopMetrics) RecordStalePurge(_ context.Context, _ string) {}

// RecordDropped does nothing.
func (NoopMetrics) RecordDropped(_ context.Context, _ string) {}

// NoopSpanManager is a SpanManager that does nothing.
type NoopSpanManager struct{}

var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

// StartPostSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartPostSpan(ctx context.Context, _ Post) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}

// AddSpanEvent does nothing.
func (NoopSpanManager) AddSpanEvent(_ context.Context, _ string, _ ...attribute.KeyValue) {}
