// Package resilience provides fault tolerance for calls into the relational store.
//
// The circuitbreaker subpackage wraps every storage gateway query in a
// github.com/sony/gobreaker breaker so that a store that keeps failing is reported as an
// infrastructure failure immediately instead of tying up request goroutines.
//
// Queries are never retried here; a failed read surfaces as an infrastructure failure.
//
// Usage Example:
//
//	guarded := circuitbreaker.NewDBCircuitBreaker(pool)
//	repo := postgres.NewArticleRepo(guarded)
package resilience
