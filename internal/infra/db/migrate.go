package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed seeds/test_data.sql
var seedTestDataSQL string

var postgresSchema = []string{`
CREATE TABLE IF NOT EXISTS topics (
    slug        VARCHAR PRIMARY KEY,
    description VARCHAR NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS articles (
    article_id      SERIAL PRIMARY KEY,
    title           VARCHAR NOT NULL,
    topic           VARCHAR NOT NULL REFERENCES topics(slug),
    author          VARCHAR NOT NULL,
    body            VARCHAR NOT NULL,
    created_at      TIMESTAMP NOT NULL DEFAULT NOW(),
    votes           INT NOT NULL DEFAULT 0,
    article_img_url VARCHAR NOT NULL DEFAULT ''
)`, `
CREATE TABLE IF NOT EXISTS comments (
    comment_id SERIAL PRIMARY KEY,
    body       VARCHAR NOT NULL,
    article_id INT NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
    author     VARCHAR NOT NULL,
    votes      INT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
)`,
	// comments are always fetched or counted by article
	`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
}

var sqliteSchema = []string{`
CREATE TABLE IF NOT EXISTS topics (
    slug        TEXT PRIMARY KEY,
    description TEXT NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS articles (
    article_id      INTEGER PRIMARY KEY AUTOINCREMENT,
    title           TEXT NOT NULL,
    topic           TEXT NOT NULL REFERENCES topics(slug),
    author          TEXT NOT NULL,
    body            TEXT NOT NULL,
    created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    votes           INTEGER NOT NULL DEFAULT 0,
    article_img_url TEXT NOT NULL DEFAULT ''
)`, `
CREATE TABLE IF NOT EXISTS comments (
    comment_id INTEGER PRIMARY KEY AUTOINCREMENT,
    body       TEXT NOT NULL,
    article_id INTEGER NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
    author     TEXT NOT NULL,
    votes      INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
}

// dropStatements are shared by both dialects; children first.
var dropStatements = []string{
	`DROP TABLE IF EXISTS comments`,
	`DROP TABLE IF EXISTS articles`,
	`DROP TABLE IF EXISTS topics`,
}

func schemaFor(driver string) ([]string, error) {
	switch driver {
	case DriverPostgres:
		return postgresSchema, nil
	case DriverSQLite:
		return sqliteSchema, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

// MigrateUp creates the topics, articles and comments tables for the given driver.
// It is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB, driver string) error {
	stmts, err := schemaFor(driver)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// MigrateDown drops every table created by MigrateUp.
// Use with caution: this deletes all data.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	for _, stmt := range dropStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Seed loads the fixed development/test data set (3 topics, 13 articles, 18 comments)
// into empty tables. The statements are valid in both dialects.
func Seed(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, seedTestDataSQL); err != nil {
		return fmt.Errorf("seed test data: %w", err)
	}
	return nil
}

// Reset drops, recreates and reseeds the schema.
func Reset(ctx context.Context, db *sql.DB, driver string) error {
	if err := MigrateDown(ctx, db); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	if err := MigrateUp(ctx, db, driver); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return Seed(ctx, db)
}
