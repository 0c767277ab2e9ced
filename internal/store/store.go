package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/vishnupriya759285/velookara/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrInvalidDates     = errors.New("event end date is before start date")

	ErrEventInactive  = errors.New("event is not active")
	ErrEventFull      = errors.New("event is full")
	ErrDuplicatePhone = errors.New("phone already registered for event")
)

// querier 同時由 database.DB 與 pgx.Tx 實作
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// wrap 把 ErrNoRows 轉成 ErrNotFound 並加上函式名稱
func wrap(op string, err error) error {
	if database.IsNoRows(err) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// execAffecting 執行 DML，沒有影響任何列時回傳 ErrNotFound
func execAffecting(ctx context.Context, q querier, op, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func count(ctx context.Context, q querier, op, sql string, args ...any) (int, error) {
	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
