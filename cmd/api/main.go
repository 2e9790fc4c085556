package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/docgen"

	"nc-news/internal/config"
	hhttp "nc-news/internal/handler/http"
	pgRepo "nc-news/internal/infra/adapter/persistence/postgres"
	sqliteRepo "nc-news/internal/infra/adapter/persistence/sqlite"
	"nc-news/internal/infra/db"
	"nc-news/internal/observability/logging"
	"nc-news/internal/observability/metrics"
	"nc-news/internal/observability/tracing"
	"nc-news/internal/repository"
	"nc-news/internal/resilience/circuitbreaker"
	artUC "nc-news/internal/usecase/article"
	commentUC "nc-news/internal/usecase/comment"
	topicUC "nc-news/internal/usecase/topic"
	envcfg "nc-news/pkg/config"

	_ "nc-news/docs" // swagger docs
)

// @title           NC News API
// @version         1.0
// @description     トピック・記事・コメントを提供する読み取り専用のニュース API

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:9090
// @BasePath  /api

// dbStatsInterval is how often pool statistics are copied into gauges.
const dbStatsInterval = 15 * time.Second

type repositories struct {
	articles repository.ArticleRepository
	comments repository.CommentRepository
	topics   repository.TopicRepository
}

func main() {
	routes := flag.Bool("routes", false, "print route documentation as markdown and exit")
	configPath := flag.String("config", envcfg.GetEnvString("CONFIG_FILE", ""), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.LoadServerConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg.LogLevel)

	pool := db.NewPool(cfg.DBOptions())
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	breaker := circuitbreaker.NewDBCircuitBreaker(pool)
	repos := newRepositories(cfg.Database.Driver, breaker)
	router := setupRouter(logger, cfg, pool, breaker, repos)

	// -routes でルート定義を Markdown 出力する
	if *routes {
		fmt.Println(docgen.MarkdownRoutesDoc(router, docgen.MarkdownOpts{
			ProjectPath: "nc-news",
			Intro:       "Routes served by the nc-news API.",
		}))
		return
	}

	runServer(logger, cfg, pool, router)
}

// initLogger builds the JSON logger and installs it as the slog default.
func initLogger(level string) *slog.Logger {
	logger := logging.NewLogger(level)
	slog.SetDefault(logger)
	return logger
}

// newRepositories picks the storage gateway matching the configured driver.
// Both read through the circuit breaker.
func newRepositories(driver string, q circuitbreaker.Querier) repositories {
	if driver == db.DriverSQLite {
		return repositories{
			articles: sqliteRepo.NewArticleRepo(q),
			comments: sqliteRepo.NewCommentRepo(q),
			topics:   sqliteRepo.NewTopicRepo(q),
		}
	}
	return repositories{
		articles: pgRepo.NewArticleRepo(q),
		comments: pgRepo.NewCommentRepo(q),
		topics:   pgRepo.NewTopicRepo(q),
	}
}

func setupRouter(logger *slog.Logger, cfg *config.ServerConfig, pool *db.Pool, breaker *circuitbreaker.DBCircuitBreaker, repos repositories) chi.Router {
	var limiter *hhttp.RateLimiter
	if cfg.RateLimit.Enabled {
		proxies := hhttp.TrustedProxies(cfg.TrustedProxies())
		limiter = hhttp.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).TrustProxies(proxies)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst),
			slog.Int("trusted_proxies", len(proxies)))
	} else {
		logger.Warn("rate limiting is disabled")
	}

	return hhttp.NewRouter(hhttp.Deps{
		Logger:      logger,
		Articles:    &artUC.Service{Repo: repos.articles},
		Comments:    &commentUC.Service{Repo: repos.comments},
		Topics:      topicUC.NewService(repos.topics, cfg.Cache.TopicTTL),
		DB:          pool,
		Breaker:     breaker,
		Version:     cfg.Version,
		RateLimiter: limiter,
		CORSOrigins: cfg.CORS.AllowedOrigins,
	})
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.ServerConfig, pool *db.Pool, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing := tracing.InitProvider()
	go reportDBStats(ctx, pool)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("driver", cfg.Database.Driver),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracer shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

// reportDBStats copies connection pool statistics into gauges until ctx is done.
func reportDBStats(ctx context.Context, pool *db.Pool) {
	ticker := time.NewTicker(dbStatsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := pool.Stats()
			metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
		}
	}
}
