package main

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nc-news/internal/config"
	"nc-news/internal/infra/db"
)

func sqliteConfig(t *testing.T) *config.ServerConfig {
	t.Helper()
	cfg := config.Default()
	cfg.Database.Driver = db.DriverSQLite
	cfg.Database.URL = "file:" + filepath.Join(t.TempDir(), "seed.db")
	return cfg
}

func count(t *testing.T, dsn, table string) int {
	t.Helper()
	conn, err := sql.Open(db.DriverSQLite, dsn)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	var n int
	require.NoError(t, conn.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestRun_ResetSeedsFixedDataSet(t *testing.T) {
	cfg := sqliteConfig(t)

	require.NoError(t, run(false, cfg, 10*time.Second))
	// 二回目も同じ結果になる
	require.NoError(t, run(false, cfg, 10*time.Second))

	assert.Equal(t, 3, count(t, cfg.Database.URL, "topics"))
	assert.Equal(t, 13, count(t, cfg.Database.URL, "articles"))
	assert.Equal(t, 18, count(t, cfg.Database.URL, "comments"))
}

func TestRun_MigrateOnlyKeepsData(t *testing.T) {
	cfg := sqliteConfig(t)
	require.NoError(t, run(false, cfg, 10*time.Second))

	require.NoError(t, run(true, cfg, 10*time.Second))

	assert.Equal(t, 13, count(t, cfg.Database.URL, "articles"))
}

func TestRun_MigrateOnlyOnEmptyDatabase(t *testing.T) {
	cfg := sqliteConfig(t)

	require.NoError(t, run(true, cfg, 10*time.Second))

	assert.Equal(t, 0, count(t, cfg.Database.URL, "topics"))
}
