package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/circulib/lending-engine-go/journal"
)

// TracingCollector implements journal.TracingCollector on the OpenTelemetry
// tracing API, creating spans for journal and workflow operations.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a collector on the given tracer.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span with the given name and attributes and returns the
// derived context plus a handle for finishing the span.
func (t *TracingCollector) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, journal.SpanContext) {

	spanOptions := make([]trace.SpanStartOption, 0, len(attrs))
	for key, value := range attrs {
		spanOptions = append(spanOptions, trace.WithAttributes(attribute.String(key, value)))
	}

	spanCtx, span := t.tracer.Start(ctx, name, spanOptions...)

	return spanCtx, &spanContext{span: span}
}

// FinishSpan sets final attributes and status on the span and ends it.
func (t *TracingCollector) FinishSpan(spanCtx journal.SpanContext, status string, attrs map[string]string) {
	sc, ok := spanCtx.(*spanContext)
	if !ok {
		return
	}

	for key, value := range attrs {
		sc.span.SetAttributes(attribute.String(key, value))
	}

	sc.setSpanStatus(status)
	sc.span.End()
}

var _ journal.TracingCollector = (*TracingCollector)(nil)

// spanContext wraps an OpenTelemetry span behind journal.SpanContext.
type spanContext struct {
	span trace.Span
}

// SetStatus maps a generic status string to an OpenTelemetry status code.
func (s *spanContext) SetStatus(status string) {
	s.setSpanStatus(status)
}

// AddAttribute adds a string attribute to the span.
func (s *spanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

func (s *spanContext) setSpanStatus(status string) {
	switch status {
	case "ok", "success", "completed":
		s.span.SetStatus(codes.Ok, "")
	case "error", "failed", "failure":
		s.span.SetStatus(codes.Error, "operation failed")
	case "cancelled", "canceled":
		s.span.SetStatus(codes.Error, "operation cancelled")
	case "timeout":
		s.span.SetStatus(codes.Error, "operation timed out")
	case "conflict":
		s.span.SetStatus(codes.Error, "concurrency conflict")
	default:
		s.span.SetAttributes(attribute.String("status", status))
	}
}

var _ journal.SpanContext = (*spanContext)(nil)
