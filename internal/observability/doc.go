// Package observability provides the logging, metrics and tracing infrastructure
// shared by the HTTP layer and the resolvers.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry spans for requests and resolver calls
//
// Example usage:
//
//	import (
//	    "nc-news/internal/observability/logging"
//	    "nc-news/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger("info")
//	    logger.Info("application started")
//
//	    metrics.RecordResolverOutcome("article.get", err, time.Since(start))
//	}
package observability
