// Package tracing provides OpenTelemetry tracing integration.
//
// Middleware opens a server span per HTTP request, named after the matched chi
// route pattern, and StartSpan opens child spans for resolver calls. Spans go to
// whatever TracerProvider is installed globally; without one they are no-ops.
//
// Example usage:
//
//	func (s *Service) Get(ctx context.Context, raw string) (*entity.Article, error) {
//	    ctx, span := tracing.StartSpan(ctx, "article.Get")
//	    defer span.End()
//	    ...
//	}
package tracing
