package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("wumpus")

// PostSpanName is the name of the span covering one Post.
const PostSpanName = "wumpus.post"

// Post identifies one delivery for tracing.
type Post struct {
	Tag     string
	ID      string
	CauseID string // empty for a top-level post
	Depth   int
}

func (p Post) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("event.tag", p.Tag),
		attribute.String("post.id", p.ID),
		attribute.Int("post.depth", p.Depth),
	}
	if p.CauseID != "" {
		attrs = append(attrs, attribute.String("post.cause_id", p.CauseID))
	}
	return attrs
}

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartPostSpan starts a span covering delivery of one event.
	// A post made from inside Notify becomes a child of the post that
	// caused it, since the span travels in ctx.
	StartPostSpan(ctx context.Context, p Post) (context.Context, trace.Span)

	// EndSpanWithError completes a span, marking it failed when err is set.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent annotates the span carried by ctx, if any.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

type otelSpanManager struct{}

// NewSpanManager returns a SpanManager backed by the global tracer provider.
// Install the provider first:
//
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return otelSpanManager{}
}

func (otelSpanManager) StartPostSpan(ctx context.Context, p Post) (context.Context, trace.Span) {
	return tracer.Start(ctx, PostSpanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(p.attributes()...),
	)
}

func (otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	defer span.End()

	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func (otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.AddEvent(name, trace.WithAttributes(attrs...))
	}
}
