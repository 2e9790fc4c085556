package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strconv"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nc-news/internal/handler/http/requestid"
	"nc-news/internal/observability/logging"
	"nc-news/internal/observability/metrics"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_Limit(t *testing.T) {
	tests := []struct {
		name           string
		burst          int
		requests       int
		expectedStatus []int
	}{
		{
			name:           "within burst - all allowed",
			burst:          5,
			requests:       5,
			expectedStatus: []int{200, 200, 200, 200, 200},
		},
		{
			name:           "burst of 5 - 6th request blocked",
			burst:          5,
			requests:       6,
			expectedStatus: []int{200, 200, 200, 200, 200, 429},
		},
		{
			name:           "burst of 3 - immediate limit",
			burst:          3,
			requests:       5,
			expectedStatus: []int{200, 200, 200, 429, 429},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ほぼ補充されないレートでバースト分だけ許可する
			rl := NewRateLimiter(0.001, tt.burst)
			handler := rl.Limit(okHandler())

			for i := 0; i < tt.requests; i++ {
				req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
				req.RemoteAddr = "192.168.1.1:12345"

				rr := httptest.NewRecorder()
				handler.ServeHTTP(rr, req)

				if rr.Code != tt.expectedStatus[i] {
					t.Errorf("request %d: got status %d, want %d", i+1, rr.Code, tt.expectedStatus[i])
				}
			}
		})
	}
}

func TestRateLimiter_RejectionBody(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	handler := rl.Limit(okHandler())
	before := testutil.ToFloat64(metrics.HTTPRateLimited)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	require.Equal(t, http.StatusOK, send().Code)
	rr := send()

	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"msg":"Too Many Requests"}`, rr.Body.String())
	retry, err := strconv.Atoi(rr.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.Positive(t, retry)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.HTTPRateLimited))
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	handler := rl.Limit(okHandler())

	for _, ip := range []string{"192.168.1.1", "192.168.1.2", "192.168.1.3"} {
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api", nil)
			req.RemoteAddr = ip + ":12345"
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			want := http.StatusOK
			if i == 2 {
				want = http.StatusTooManyRequests
			}
			assert.Equal(t, want, rr.Code, "ip=%s request=%d", ip, i+1)
		}
	}
	assert.Equal(t, 3, rl.Clients())
}

func TestRateLimiter_ForwardedForFromUntrustedPeer(t *testing.T) {
	tests := []struct {
		name    string
		proxies TrustedProxies
	}{
		{name: "no trusted proxies", proxies: nil},
		{name: "peer outside trusted range", proxies: TrustedProxies{netip.MustParsePrefix("10.0.0.0/8")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(1, 1).TrustProxies(tt.proxies)
			handler := rl.Limit(okHandler())

			rejected := 0
			for i := 0; i < 20; i++ {
				req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
				req.RemoteAddr = "198.51.100.7:40000"
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i+1))
				req.Header.Set("X-Real-IP", fmt.Sprintf("10.1.0.%d", i+1))
				rr := httptest.NewRecorder()
				handler.ServeHTTP(rr, req)
				if rr.Code == http.StatusTooManyRequests {
					rejected++
				}
			}

			// ヘッダーを変えても同一クライアントとして扱われる
			assert.GreaterOrEqual(t, rejected, 18)
			assert.Equal(t, 1, rl.Clients())
		})
	}
}

func TestRateLimiter_ForwardedForFromTrustedProxy(t *testing.T) {
	rl := NewRateLimiter(0.001, 1).TrustProxies(TrustedProxies{netip.MustParsePrefix("10.0.0.0/8")})
	handler := rl.Limit(okHandler())

	send := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
		req.RemoteAddr = "10.0.0.2:443"
		req.Header.Set("X-Forwarded-For", client+", 10.0.0.2")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.1"))
	assert.Equal(t, http.StatusOK, send("203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.1"))
	assert.Equal(t, 2, rl.Clients())
}

func TestRateLimiter_Concurrent(t *testing.T) {
	rl := NewRateLimiter(0.001, 10)
	handler := rl.Limit(okHandler())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
		blocked int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			mu.Lock()
			defer mu.Unlock()
			if rr.Code == http.StatusOK {
				allowed++
			} else {
				blocked++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, allowed)
	assert.Equal(t, 10, blocked)
}

func TestNewRateLimiter_MinimumBurst(t *testing.T) {
	rl := NewRateLimiter(1, 0)
	handler := rl.Limit(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerTo(&buf, "info")

	var ctxLogger *slog.Logger
	handler := requestid.Middleware(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logging.FromContext(r.Context())
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"msg":"Not Found"}`))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/banana?x=1", nil)
	req.Header.Set("User-Agent", "test-agent/1.0")
	req.Header.Set(requestid.RequestIDHeader, "req-42")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Same(t, logger, ctxLogger)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/banana", entry["path"])
	assert.Equal(t, "unmatched", entry["route"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, float64(19), entry["bytes"])
	assert.Equal(t, "test-agent/1.0", entry["user_agent"])
}

func TestRecover(t *testing.T) {
	tests := []struct {
		name        string
		panicValue  any
		shouldPanic bool
	}{
		{name: "panic with string", panicValue: "something went wrong", shouldPanic: true},
		{name: "panic with error", panicValue: fmt.Errorf("test error"), shouldPanic: true},
		{name: "panic with number", panicValue: 42, shouldPanic: true},
		{name: "no panic", shouldPanic: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewLoggerTo(&buf, "info")
			handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.shouldPanic {
					panic(tt.panicValue)
				}
				w.WriteHeader(http.StatusOK)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/topics", nil))

			if !tt.shouldPanic {
				assert.Equal(t, http.StatusOK, rr.Code)
				assert.Empty(t, buf.String())
				return
			}
			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.JSONEq(t, `{"msg":"Internal Server Error"}`, rr.Body.String())
			assert.Contains(t, buf.String(), "panic recovered")
		})
	}
}

func TestRecover_AfterHeaderWritten(t *testing.T) {
	logger := logging.NewLoggerTo(io.Discard, "info")
	handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"topics":`))
		panic("encoder failed")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/topics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"topics":`, rr.Body.String())
}

func TestRecover_ReraisesAbortHandler(t *testing.T) {
	logger := logging.NewLoggerTo(io.Discard, "info")
	handler := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
