package http

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"nc-news/internal/handler/http/requestid"
	"nc-news/internal/handler/http/respond"
	"nc-news/internal/handler/http/responsewriter"
	"nc-news/internal/observability/logging"
	"nc-news/internal/observability/metrics"
	"nc-news/internal/observability/tracing"
)

// Logging returns middleware that logs every request once it has been served,
// together with the request ID, trace ID and matched route. The logger is also
// stored in the request context for handlers and respond.Failure.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := responsewriter.Wrap(w)
			r = r.WithContext(logging.WithLogger(r.Context(), logger))

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			traceID := trace.SpanFromContext(r.Context()).SpanContext().TraceID().String()

			logger.Info("request completed",
				slog.String("request_id", requestid.FromContext(r.Context())),
				slog.String("trace_id", traceID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", tracing.RoutePattern(r)),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.Int("status", wrapped.StatusCode()),
				slog.Int("bytes", wrapped.BytesWritten()),
				slog.Duration("duration", duration),
				slog.String("duration_ms", fmt.Sprintf("%.2f", duration.Seconds()*1000)),
			)
		})
	}
}

// Recover returns middleware that turns a handler panic into a 500 response.
// When the handler had already started the response, only the log entry is written.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := responsewriter.Wrap(w)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				// 構造化ログで記録
				logger.Error("panic recovered",
					slog.String("request_id", requestid.FromContext(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)

				if !wrapped.HeaderWritten() {
					respond.JSON(wrapped, http.StatusInternalServerError, respond.ErrorBody{Msg: respond.MsgInternal})
				}
			}()
			next.ServeHTTP(wrapped, r)
		})
	}
}

// RateLimiter limits requests per client IP with a token bucket per address.
// Buckets of clients that go quiet expire from the cache. Forwarding headers
// are ignored unless the peer is a trusted proxy (see TrustProxies).
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *cache.Cache
	proxies  TrustedProxies
}

// clientIdleTTL is how long an idle client's bucket is kept.
const clientIdleTTL = 10 * time.Minute

// NewRateLimiter creates a limiter allowing rps requests per second per IP with the given burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: cache.New(clientIdleTTL, 2*clientIdleTTL),
	}
}

// TrustProxies makes the limiter key clients by X-Forwarded-For or X-Real-IP
// when, and only when, the peer is one of proxies.
func (rl *RateLimiter) TrustProxies(proxies TrustedProxies) *RateLimiter {
	rl.proxies = proxies
	return rl
}

// Limit rejects requests over the client's budget with 429 and a Retry-After header.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiterFor(rl.proxies.ClientIP(r)).Allow() {
			metrics.HTTPRateLimited.Inc()
			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
			respond.Message(w, http.StatusTooManyRequests, respond.MsgTooMany)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// limiterFor returns the bucket for ip, creating it on first use and
// extending its lifetime on every request.
func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	if v, ok := rl.limiters.Get(ip); ok {
		lim := v.(*rate.Limiter)
		rl.limiters.Set(ip, lim, cache.DefaultExpiration)
		return lim
	}
	lim := rate.NewLimiter(rl.limit, rl.burst)
	if err := rl.limiters.Add(ip, lim, cache.DefaultExpiration); err != nil {
		// 同時に作成された場合は既存のものを使う
		if v, ok := rl.limiters.Get(ip); ok {
			return v.(*rate.Limiter)
		}
	}
	return lim
}

// retryAfter is the whole number of seconds until one token refills, at least 1.
func (rl *RateLimiter) retryAfter() int {
	if rl.limit <= 0 {
		return 1
	}
	secs := int(math.Ceil(1 / float64(rl.limit)))
	if secs < 1 {
		return 1
	}
	return secs
}

// Clients returns the number of client buckets currently tracked.
func (rl *RateLimiter) Clients() int {
	return rl.limiters.ItemCount()
}
