package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/vishnupriya759285/velookara/internal/cache"
)

// CacheRecorder 記錄快取命中結果，通常由 metrics 實作
type CacheRecorder interface {
	ObserveCache(key, result string)
}

// StatsCache 統計資料的短期快取。Cache 為 nil 時每次都直接查詢
type StatsCache struct {
	Cache    cache.Cache
	TTL      time.Duration
	Recorder CacheRecorder
}

func (s *StatsCache) observe(key, result string) {
	if s != nil && s.Recorder != nil {
		s.Recorder.ObserveCache(key, result)
	}
}

// CachedStats 先讀快取，未命中時呼叫 load 並寫回。Redis 錯誤只記錄不影響回應
func CachedStats[T any](ctx context.Context, s *StatsCache, key string, load func(context.Context) (*T, error)) (*T, error) {
	if s == nil || s.Cache == nil || s.TTL <= 0 {
		return load(ctx)
	}

	var cached T
	hit, err := cache.GetJSON(ctx, s.Cache, key, &cached)
	switch {
	case err != nil:
		slog.WarnContext(ctx, "stats cache read failed", slog.String("key", key), slog.Any("error", err))
		s.observe(key, "error")
	case hit:
		s.observe(key, "hit")
		return &cached, nil
	default:
		s.observe(key, "miss")
	}

	v, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, s.Cache, key, v, s.TTL); err != nil {
		slog.WarnContext(ctx, "stats cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return v, nil
}
