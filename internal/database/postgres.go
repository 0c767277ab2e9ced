package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolOptions 連線池設定，零值欄位沿用 pgxpool 預設
type PoolOptions struct {
	MaxConns       int32
	MinConns       int32
	IdleTimeout    time.Duration
	ConnectTimeout time.Duration
}

var (
	pgxpoolParseConfig   = pgxpool.ParseConfig
	pgxpoolNewWithConfig = pgxpool.NewWithConfig
)

// NewPgxPool 建立連線池，回傳 DB 介面
func NewPgxPool(ctx context.Context, url string, opts PoolOptions) (DB, error) {
	cfg, err := pgxpoolParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 {
		cfg.MinConns = opts.MinConns
	}
	if opts.IdleTimeout > 0 {
		cfg.MaxConnIdleTime = opts.IdleTimeout
	}
	if opts.ConnectTimeout > 0 {
		cfg.ConnConfig.ConnectTimeout = opts.ConnectTimeout
	}

	pool, err := pgxpoolNewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
