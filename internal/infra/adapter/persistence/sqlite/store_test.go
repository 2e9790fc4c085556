package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nc-news/internal/infra/db"
)

/* ────────────────────────────  ヘルパ  ──────────────────────────── */

// seededDB returns an in-memory database loaded with the test data set.
func seededDB(t *testing.T) *sql.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn, err := sql.Open(db.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	// every connection to a memory database would otherwise see its own empty copy
	conn.SetMaxOpenConns(1)

	require.NoError(t, db.Reset(context.Background(), conn, db.DriverSQLite))
	return conn
}
