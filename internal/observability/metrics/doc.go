// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Resolver outcomes, labelled by failure kind
//   - Topic cache hits and misses
//   - Database query duration and connection pool statistics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "nc-news/internal/observability/metrics"
//
//	func (s *Service) Get(ctx context.Context, raw string) (a *entity.Article, err error) {
//	    defer func(start time.Time) {
//	        metrics.RecordResolverOutcome("article.get", err, time.Since(start))
//	    }(time.Now())
//	    ...
//	}
package metrics
