package metrics

import (
	"time"

	"nc-news/internal/domain/entity"
)

// RecordHTTPRequest records an HTTP request with its metadata.
// Path must be a route pattern, never a raw URL, to keep label cardinality bounded.
func RecordHTTPRequest(method, path, status string, duration time.Duration, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}

// RecordResolverOutcome records one resolver call. The outcome label is the
// failure kind of err, or "ok" when err is nil.
func RecordResolverOutcome(resolver string, err error, duration time.Duration) {
	ResolverOutcomesTotal.WithLabelValues(resolver, entity.KindOf(err).String()).Inc()
	ResolverDuration.WithLabelValues(resolver).Observe(duration.Seconds())
}

// RecordTopicCache records a topic cache lookup.
func RecordTopicCache(hit bool) {
	result := "hit"
	if !hit {
		result = "miss"
	}
	TopicCacheTotal.WithLabelValues(result).Inc()
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query (e.g., "articles.get", "comments.list").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
