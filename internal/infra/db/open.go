// Package db owns the process-wide connection pool and the schema/seed lifecycle.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// ErrPoolClosed is returned by every Pool method after Close.
var ErrPoolClosed = errors.New("database pool closed")

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,               // Maximum number of open connections
		MaxIdleConns:    10,               // Maximum number of idle connections
		ConnMaxLifetime: 1 * time.Hour,    // Maximum lifetime of a connection
		ConnMaxIdleTime: 30 * time.Minute, // Maximum idle time of a connection
	}
}

// Options describes how the pool reaches the store.
type Options struct {
	Driver      string
	DSN         string
	Conn        ConnectionConfig
	PingTimeout time.Duration
}

// Pool is a lazily opened, shared-by-reference *sql.DB.
// The first query (or Ping) opens and verifies the connection; later calls reuse it.
// A failed open is not cached, so the next call tries again.
type Pool struct {
	opts Options
	open func(driver, dsn string) (*sql.DB, error)

	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// NewPool returns a Pool that has not connected yet.
func NewPool(opts Options) *Pool {
	if opts.PingTimeout <= 0 {
		opts.PingTimeout = 5 * time.Second
	}
	return &Pool{opts: opts, open: sql.Open}
}

// Wrap returns a Pool around an already opened *sql.DB.
// It is used by tests and by tools that manage the handle themselves.
func Wrap(db *sql.DB, driver string) *Pool {
	return &Pool{opts: Options{Driver: driver}, db: db}
}

// Driver returns the configured database/sql driver name.
func (p *Pool) Driver() string {
	return p.opts.Driver
}

// DB returns the shared handle, opening it on first use.
func (p *Pool) DB(ctx context.Context) (*sql.DB, error) {
	db, _, err := p.acquire(ctx)
	return db, err
}

// acquire returns the shared handle and whether this call opened (and pinged) it.
func (p *Pool) acquire(ctx context.Context) (*sql.DB, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, false, ErrPoolClosed
	}
	if p.db != nil {
		return p.db, false, nil
	}

	db, err := p.open(p.opts.Driver, p.opts.DSN)
	if err != nil {
		return nil, false, fmt.Errorf("open %s: %w", p.opts.Driver, err)
	}

	cfg := p.opts.Conn
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, p.opts.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, false, fmt.Errorf("ping %s: %w", p.opts.Driver, err)
	}

	slog.Info("database connection pool configured",
		slog.String("driver", p.opts.Driver),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	p.db = db
	return db, true, nil
}

// QueryContext runs a read query on the shared handle.
func (p *Pool) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	db, err := p.DB(ctx)
	if err != nil {
		return nil, err
	}
	return db.QueryContext(ctx, query, args...)
}

// PingContext verifies the store is reachable, opening the pool if needed.
// The ping that opens the pool counts, so the first call makes one round-trip.
func (p *Pool) PingContext(ctx context.Context) error {
	db, opened, err := p.acquire(ctx)
	if err != nil || opened {
		return err
	}
	return db.PingContext(ctx)
}

// Stats returns pool statistics, or zero values before the pool is opened.
func (p *Pool) Stats() sql.DBStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db == nil {
		return sql.DBStats{}
	}
	return p.db.Stats()
}

// Close releases the shared handle. Safe to call more than once.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}

// ApplyEnv overrides fields of base with DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS,
// DB_CONN_MAX_LIFETIME and DB_CONN_MAX_IDLE_TIME. Unset, unparsable and
// non-positive values leave the base value in place.
func ApplyEnv(base ConnectionConfig) ConnectionConfig {
	cfg := base

	if maxOpen := os.Getenv("DB_MAX_OPEN_CONNS"); maxOpen != "" {
		if val, err := strconv.Atoi(maxOpen); err == nil && val > 0 {
			cfg.MaxOpenConns = val
		}
	}

	if maxIdle := os.Getenv("DB_MAX_IDLE_CONNS"); maxIdle != "" {
		if val, err := strconv.Atoi(maxIdle); err == nil && val > 0 {
			cfg.MaxIdleConns = val
		}
	}

	if lifetime := os.Getenv("DB_CONN_MAX_LIFETIME"); lifetime != "" {
		if val, err := time.ParseDuration(lifetime); err == nil && val > 0 {
			cfg.ConnMaxLifetime = val
		}
	}

	if idleTime := os.Getenv("DB_CONN_MAX_IDLE_TIME"); idleTime != "" {
		if val, err := time.ParseDuration(idleTime); err == nil && val > 0 {
			cfg.ConnMaxIdleTime = val
		}
	}

	return cfg
}
