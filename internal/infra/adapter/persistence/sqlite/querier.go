// Package sqlite provides SQLite implementations of the storage gateway contracts.
// The statements mirror the postgres package with ? placeholders; they back local
// development and the in-memory store tests.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"nc-news/internal/observability/metrics"
)

// Querier executes a read query; see postgres.Querier.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func observe(operation string, start time.Time) {
	metrics.RecordDBQuery(operation, time.Since(start))
}
