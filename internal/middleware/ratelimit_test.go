package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/cache"
	"github.com/vishnupriya759285/velookara/internal/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func rateLimited(t *testing.T, rdb cache.Cache, cfg RateLimitConfig) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(RateLimit(rdb, cfg))
	e.GET("/api/issues", okHandler)
	e.GET("/api/health", okHandler)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		_ = c.NoContent(apperr.KindOf(err).Status())
	}
	return e
}

func get(e *echo.Echo, path, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := rateLimited(t, rdb, RateLimitConfig{
		Max:    2,
		Window: time.Minute,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/api/health")
		},
		Logger: logger.Discard(),
	})

	rec := get(e, "/api/issues", "10.0.0.1")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	require.Equal(t, http.StatusNoContent, get(e, "/api/issues", "10.0.0.1").Code)

	rec = get(e, "/api/issues", "10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	// 其他 IP 與健康檢查不受影響
	require.Equal(t, http.StatusNoContent, get(e, "/api/issues", "10.0.0.2").Code)
	require.Equal(t, http.StatusNoContent, get(e, "/api/health", "10.0.0.1").Code)

	ttl := mr.TTL("ratelimit:10.0.0.1")
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, time.Minute)

	mr.FastForward(time.Minute + time.Second)
	require.Equal(t, http.StatusNoContent, get(e, "/api/issues", "10.0.0.1").Code)
}

func TestRateLimitFailsOpen(t *testing.T) {
	var buf bytes.Buffer
	fc := &cache.FakeCache{EvalShaFn: func(context.Context, string, []string, ...any) *redis.Cmd {
		return redis.NewCmdResult(nil, errors.New("connection refused"))
	}}
	e := rateLimited(t, fc, RateLimitConfig{Max: 1, Window: time.Minute, Logger: slog.New(slog.NewTextHandler(&buf, nil))})

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusNoContent, get(e, "/api/issues", "10.0.0.1").Code)
	}
	require.Contains(t, buf.String(), "rate limit unavailable")
}

func TestRateLimitDisabled(t *testing.T) {
	e := rateLimited(t, &cache.FakeCache{}, RateLimitConfig{Max: 0})
	require.Equal(t, http.StatusNoContent, get(e, "/api/issues", "10.0.0.1").Code)
}

func TestRateLimitRepairsKeyWithoutTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	// 先前的計數留下沒有過期時間的 key
	require.NoError(t, mr.Set("ratelimit:10.0.0.9", "1"))
	require.Equal(t, time.Duration(0), mr.TTL("ratelimit:10.0.0.9"))

	e := rateLimited(t, rdb, RateLimitConfig{Max: 2, Window: time.Minute, Logger: logger.Discard()})
	require.Equal(t, http.StatusNoContent, get(e, "/api/issues", "10.0.0.9").Code)
	require.Equal(t, http.StatusTooManyRequests, get(e, "/api/issues", "10.0.0.9").Code)

	ttl := mr.TTL("ratelimit:10.0.0.9")
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, time.Minute)

	mr.FastForward(time.Minute + time.Second)
	require.Equal(t, http.StatusNoContent, get(e, "/api/issues", "10.0.0.9").Code)
}

func TestRateLimitScriptFallsBackToEval(t *testing.T) {
	var got []string
	fc := &cache.FakeCache{EvalFn: func(_ context.Context, script string, keys []string, args ...any) *redis.Cmd {
		got = keys
		require.Contains(t, script, "PEXPIRE")
		require.Equal(t, []any{int64(60000)}, args)
		return redis.NewCmdResult(int64(3), nil)
	}}
	e := rateLimited(t, fc, RateLimitConfig{Max: 5, Window: time.Minute, Logger: logger.Discard()})
	rec := get(e, "/api/issues", "10.0.0.1")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "2", rec.Header().Get("X-RateLimit-Remaining"))
	require.Equal(t, []string{"ratelimit:10.0.0.1"}, got)
}
