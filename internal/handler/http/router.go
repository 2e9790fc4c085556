package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"nc-news/internal/domain/entity"
	"nc-news/internal/handler/http/article"
	"nc-news/internal/handler/http/comment"
	"nc-news/internal/handler/http/endpoints"
	"nc-news/internal/handler/http/requestid"
	"nc-news/internal/handler/http/respond"
	"nc-news/internal/handler/http/topic"
	"nc-news/internal/observability/tracing"
	artUC "nc-news/internal/usecase/article"
	commentUC "nc-news/internal/usecase/comment"
	topicUC "nc-news/internal/usecase/topic"
)

// Deps are the collaborators NewRouter wires into routes.
type Deps struct {
	Logger   *slog.Logger
	Articles *artUC.Service
	Comments *commentUC.Service
	Topics   *topicUC.Service

	DB      Database // health and readiness probes
	Breaker Breaker  // optional
	Version string

	// RateLimiter guards /api; nil disables rate limiting.
	RateLimiter *RateLimiter
	// CORSOrigins lists allowed origins; empty allows any origin.
	CORSOrigins []string
}

// NewRouter builds the complete HTTP handler: the middleware chain, the /api
// resource routes and the operational endpoints. Every unmatched path or method
// is answered with 404 {"msg":"Not Found"}.
func NewRouter(d Deps) chi.Router {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		tracing.Middleware,
		Logging(logger),
		Recover(logger),
		MetricsMiddleware,
		newCORS(d.CORSOrigins).Handler,
	)

	notFound := func(w http.ResponseWriter, req *http.Request) {
		respond.Failure(w, req, entity.ErrRouteNotFound)
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Route("/api", func(api chi.Router) {
		if d.RateLimiter != nil {
			api.Use(d.RateLimiter.Limit)
		}
		api.NotFound(notFound)
		api.MethodNotAllowed(notFound)

		endpoints.Register(api)
		topic.Register(api, d.Topics)
		article.Register(api, d.Articles)
		comment.Register(api, d.Articles, d.Comments)
	})

	r.Method("GET", "/health", &HealthHandler{DB: d.DB, Breaker: d.Breaker, Limiter: d.RateLimiter, Version: d.Version})
	r.Method("GET", "/ready", &ReadyHandler{DB: d.DB})
	r.Method("GET", "/live", &LiveHandler{})
	r.Method("GET", "/metrics", MetricsHandler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// newCORS allows cross-origin reads of the API. Only safe methods are exposed.
func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestid.RequestIDHeader},
		ExposedHeaders: []string{requestid.RequestIDHeader, "X-Trace-Id", "Retry-After"},
		MaxAge:         300,
	})
}
