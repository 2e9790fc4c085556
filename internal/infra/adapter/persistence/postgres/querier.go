// Package postgres provides PostgreSQL implementations of the storage gateway contracts.
// Every query is a fixed statement with positional ($n) parameters.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"nc-news/internal/observability/metrics"
)

// Querier is what the repositories need from the store: a lazily opened *db.Pool,
// a circuit-breaker wrapper around it, or a plain *sql.DB in tests.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func observe(operation string, start time.Time) {
	metrics.RecordDBQuery(operation, time.Since(start))
}
