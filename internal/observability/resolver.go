package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"nc-news/internal/observability/metrics"
	"nc-news/internal/observability/tracing"
)

// StartResolver opens a span for a resolver call and returns the finish func that
// records its outcome. Call finish exactly once with the error the resolver returns.
//
//	ctx, finish := observability.StartResolver(ctx, "article.get")
//	defer func() { finish(err) }()
func StartResolver(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, name, attrs...)
	return ctx, func(err error) {
		tracing.EndSpan(span, err)
		metrics.RecordResolverOutcome(name, err, time.Since(start))
	}
}
