package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"nc-news/internal/domain/entity"
)

// InstrumentationName identifies spans created by this application.
const InstrumentationName = "nc-news"

// GetTracer returns the tracer from the currently installed provider.
// It is looked up on every call so a provider installed after startup (or by tests) is honoured.
func GetTracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(InstrumentationName)
}

// StartSpan starts an internal span as a child of whatever span ctx carries.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan annotates span with the failure kind of err and ends it.
// Only infrastructure failures set the span status to Error; the other kinds are
// expected client outcomes.
func EndSpan(span trace.Span, err error) {
	kind := entity.KindOf(err)
	span.SetAttributes(attribute.String("outcome", kind.String()))
	if kind == entity.KindInfrastructure {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
