package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.Exec(context.Background(), "", nil) })
	require.Panics(t, func() { db.Query(context.Background(), "") })
	require.Panics(t, func() { db.QueryRow(context.Background(), "") })
	require.Panics(t, func() { db.Begin(context.Background()) })
	require.Panics(t, func() { db.Ping(context.Background()) })
	db.Close()

	execCalled := false
	queryCalled := false
	rowCalled := false
	beginCalled := false
	pingCalled := false
	closeCalled := false

	db.ExecFn = func(ctx context.Context, s string, args ...any) (pgconn.CommandTag, error) {
		execCalled = true
		return pgconn.CommandTag{}, errors.New("e")
	}
	db.QueryFn = func(ctx context.Context, s string, args ...any) (pgx.Rows, error) {
		queryCalled = true
		return &FakeRows{}, nil
	}
	db.QueryRowFn = func(ctx context.Context, s string, args ...any) pgx.Row {
		rowCalled = true
		return FakeRow{}
	}
	db.BeginFn = func(ctx context.Context) (pgx.Tx, error) {
		beginCalled = true
		return &FakeTx{}, nil
	}
	db.PingFn = func(ctx context.Context) error { pingCalled = true; return nil }
	db.CloseFn = func() { closeCalled = true }

	_, err := db.Exec(context.Background(), "sql")
	require.Error(t, err)
	_, err = db.Query(context.Background(), "sql")
	require.NoError(t, err)
	_ = db.QueryRow(context.Background(), "sql")
	_, err = db.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, db.Ping(context.Background()))
	db.Close()
	require.True(t, execCalled)
	require.True(t, queryCalled)
	require.True(t, rowCalled)
	require.True(t, beginCalled)
	require.True(t, pingCalled)
	require.True(t, closeCalled)
}

func TestFakeTx(t *testing.T) {
	tx := &FakeTx{}
	require.Panics(t, func() { tx.Exec(context.Background(), "") })
	require.Panics(t, func() { tx.QueryRow(context.Background(), "") })

	require.NoError(t, tx.Rollback(context.Background()))
	require.True(t, tx.RolledBack)

	tx = &FakeTx{CommitFn: func(context.Context) error { return errors.New("commit") }}
	require.Error(t, tx.Commit(context.Background()))
	require.False(t, tx.Committed)

	tx = &FakeTx{}
	require.NoError(t, tx.Commit(context.Background()))
	require.True(t, tx.Committed)
	require.ErrorIs(t, tx.Rollback(context.Background()), pgx.ErrTxClosed)
	require.False(t, tx.RolledBack)
}

type status string

func TestFakeRowScan(t *testing.T) {
	now := time.Now()
	var (
		s   string
		n   int
		st  status
		p   *string
		pn  *int
		at  time.Time
		nul *string
	)
	nul = new(string)
	row := FakeRow{Values: []any{"a", 3, "open", "ptr", 7, now, nil}}
	require.NoError(t, row.Scan(&s, &n, &st, &p, &pn, &at, &nul))
	require.Equal(t, "a", s)
	require.Equal(t, 3, n)
	require.Equal(t, status("open"), st)
	require.Equal(t, "ptr", *p)
	require.Equal(t, 7, *pn)
	require.Equal(t, now, at)
	require.Nil(t, nul)

	require.Error(t, FakeRow{Values: []any{1}}.Scan(&s))
	require.Error(t, FakeRow{Values: []any{1, 2}}.Scan(&n))
	require.Error(t, FakeRow{Values: []any{1}}.Scan(n))
	require.EqualError(t, FakeRow{Err: errors.New("x")}.Scan(&n), "x")
}

func TestFakeRows(t *testing.T) {
	rows := &FakeRows{Data: [][]any{{1, "a"}, {2, "b"}}}
	require.Error(t, rows.Scan())
	var got []string
	for rows.Next() {
		var (
			id   int
			name string
		)
		require.NoError(t, rows.Scan(&id, &name))
		vals, err := rows.Values()
		require.NoError(t, err)
		require.Len(t, vals, 2)
		got = append(got, fmt.Sprintf("%d%s", id, name))
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []string{"1a", "2b"}, got)
	rows.Close()
	require.True(t, rows.Closed)
	require.False(t, rows.Next())

	rows = &FakeRows{Data: [][]any{{1}}, ScanErr: errors.New("scan")}
	require.True(t, rows.Next())
	var id int
	require.Error(t, rows.Scan(&id))
}

func TestErrorHelpers(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "event_registrations_event_phone_key"}
	wrapped := fmt.Errorf("insert: %w", unique)
	require.True(t, IsUniqueViolation(wrapped, ""))
	require.True(t, IsUniqueViolation(wrapped, "event_registrations_event_phone_key"))
	require.False(t, IsUniqueViolation(wrapped, "users_email_key"))
	require.False(t, IsUniqueViolation(errors.New("x"), ""))

	require.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, IsForeignKeyViolation(unique))
	check := &pgconn.PgError{Code: "23514", ConstraintName: "events_end_after_start"}
	require.True(t, IsCheckViolation(check, ""))
	require.True(t, IsCheckViolation(check, "events_end_after_start"))
	require.False(t, IsCheckViolation(check, "events_max_participants_check"))

	require.True(t, IsNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	require.False(t, IsNoRows(errors.New("x")))
}
