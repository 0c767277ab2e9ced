package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義快取操作介面
// *redis.Client 直接實作；測試時以 FakeCache 或 miniredis 替換
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
	redis.Scripter
}

type FakeCache struct {
	GetFn     func(ctx context.Context, key string) *redis.StringCmd
	SetFn     func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	DelFn     func(ctx context.Context, keys ...string) *redis.IntCmd
	PingFn    func(ctx context.Context) *redis.StatusCmd
	CloseFn   func() error
	EvalFn    func(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
	EvalShaFn func(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

func (f *FakeCache) Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	if f.EvalFn != nil {
		return f.EvalFn(ctx, script, keys, args...)
	}
	panic("unexpected Eval")
}

// EvalSha 未設定時回傳 NOSCRIPT，讓 redis.Script.Run 改走 Eval
func (f *FakeCache) EvalSha(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	if f.EvalShaFn != nil {
		return f.EvalShaFn(ctx, sha1, keys, args...)
	}
	return redis.NewCmdResult(nil, noScriptError{})
}

func (f *FakeCache) EvalRO(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	return f.Eval(ctx, script, keys, args...)
}

func (f *FakeCache) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	return f.EvalSha(ctx, sha1, keys, args...)
}

func (f *FakeCache) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (f *FakeCache) ScriptLoad(ctx context.Context, script string) *redis.StringCmd {
	panic("unexpected ScriptLoad")
}

type noScriptError struct{}

func (noScriptError) Error() string { return "NOSCRIPT No matching script. Please use EVAL." }
func (noScriptError) RedisError()   {}
