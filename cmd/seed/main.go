// Command seed prepares the database for the API: it drops, recreates and
// reseeds the schema with the fixed data set. With -migrate it only creates
// missing tables and leaves existing data alone.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"nc-news/internal/config"
	"nc-news/internal/infra/db"
	"nc-news/internal/observability/logging"
	envcfg "nc-news/pkg/config"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "create missing tables only; do not reset data")
	configPath := flag.String("config", envcfg.GetEnvString("CONFIG_FILE", ""), "path to a YAML config file")
	timeout := flag.Duration("timeout", time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.LoadServerConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(*migrateOnly, cfg, *timeout); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(migrateOnly bool, cfg *config.ServerConfig, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pool := db.NewPool(cfg.DBOptions())
	defer func() { _ = pool.Close() }()

	conn, err := pool.DB(ctx)
	if err != nil {
		return err
	}

	if migrateOnly {
		if err := db.MigrateUp(ctx, conn, cfg.Database.Driver); err != nil {
			return err
		}
		slog.Info("schema migrated", slog.String("driver", cfg.Database.Driver))
		return nil
	}

	if err := db.Reset(ctx, conn, cfg.Database.Driver); err != nil {
		return err
	}
	slog.Info("database reset and seeded", slog.String("driver", cfg.Database.Driver))
	return nil
}
