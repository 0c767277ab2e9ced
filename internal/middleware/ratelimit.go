package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/cache"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

type RateLimitConfig struct {
	Max     int
	Window  time.Duration
	Skipper echomw.Skipper
	Logger  *slog.Logger
}

const rateLimitPrefix = "ratelimit:"

// 計數與過期在同一個 script 內完成；沒有 TTL 的舊 key 會被補上
const fixedWindowLua = `
local n = redis.call("INCR", KEYS[1])
if n == 1 or redis.call("PTTL", KEYS[1]) < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`

var fixedWindowScript = redis.NewScript(fixedWindowLua)

// RateLimit 以用戶端 IP 做固定視窗限流，計數存在 Redis。
// Redis 失敗時放行。
func RateLimit(rdb cache.Cache, cfg RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Skipper == nil {
		cfg.Skipper = echomw.DefaultSkipper
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper(c) || cfg.Max <= 0 {
				return next(c)
			}
			ctx := c.Request().Context()
			key := rateLimitPrefix + c.RealIP()

			n, err := fixedWindowScript.Run(ctx, rdb, []string{key}, cfg.Window.Milliseconds()).Int64()
			if err != nil {
				cfg.Logger.Warn("rate limit unavailable", slog.String("key", key), slog.Any("error", err))
				return next(c)
			}

			remaining := int64(cfg.Max) - n
			if remaining < 0 {
				remaining = 0
			}
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Max))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(cfg.Max) {
				return apperr.New(apperr.RateLimited, "Too many requests from this IP, please try again later.")
			}
			return next(c)
		}
	}
}
