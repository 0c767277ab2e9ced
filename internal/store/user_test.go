package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func userValues(u model.User) []any {
	return []any{u.ID, u.Name, u.Email, u.Phone, string(u.Role), u.IsActive, u.CreatedAt, u.UpdatedAt}
}

func sampleUser() model.User {
	now := time.Now().UTC()
	phone := "9876543210"
	return model.User{
		ID:        uuid.New(),
		Name:      "Asha",
		Email:     "asha@example.com",
		Phone:     &phone,
		Role:      model.RoleCitizen,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func rowDB(values []any, err error, capture func(sql string, args []any)) *database.FakeDB {
	return &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
		if capture != nil {
			capture(sql, args)
		}
		return database.FakeRow{Values: values, Err: err}
	}}
}

func TestGetUserByID(t *testing.T) {
	u := sampleUser()

	var gotSQL string
	got, err := GetUserByID(context.Background(), rowDB(userValues(u), nil, func(sql string, args []any) {
		gotSQL = sql
		require.Equal(t, u.ID, args[0])
	}), u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Name, got.Name)
	require.Equal(t, model.RoleCitizen, got.Role)
	require.Empty(t, got.PasswordHash)
	require.NotContains(t, gotSQL, "password")

	_, err = GetUserByID(context.Background(), rowDB(nil, pgx.ErrNoRows, nil), u.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = GetUserByID(context.Background(), rowDB(nil, errors.New("db"), nil), u.ID)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestGetUserByEmail(t *testing.T) {
	u := sampleUser()
	values := append(userValues(u), "hash")
	got, err := GetUserByEmail(context.Background(), rowDB(values, nil, func(sql string, args []any) {
		require.Contains(t, sql, "LOWER($1)")
		require.Equal(t, "Asha@Example.com", args[0])
	}), "Asha@Example.com")
	require.NoError(t, err)
	require.Equal(t, "hash", got.PasswordHash)

	_, err = GetUserByEmail(context.Background(), rowDB(nil, pgx.ErrNoRows, nil), "x@y.z")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUser(t *testing.T) {
	u := sampleUser()
	u.PasswordHash = "hash"

	got, err := CreateUser(context.Background(), rowDB(userValues(u), nil, func(sql string, args []any) {
		require.Equal(t, "hash", args[2])
		require.Equal(t, model.RoleCitizen, args[4])
	}), &u)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	_, err = CreateUser(context.Background(), rowDB(nil, dup, nil), &u)
	require.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = CreateUser(context.Background(), rowDB(nil, errors.New("db"), nil), &u)
	require.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	u := sampleUser()
	name := "New"
	got, err := UpdateProfile(context.Background(), rowDB(userValues(u), nil, func(sql string, args []any) {
		require.Contains(t, sql, "COALESCE($2, name)")
		require.Equal(t, &name, args[1])
		require.Nil(t, args[2])
	}), u.ID, model.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = UpdateProfile(context.Background(), rowDB(nil, pgx.ErrNoRows, nil), u.ID, model.ProfileUpdate{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserRoleAndStatus(t *testing.T) {
	u := sampleUser()
	u.Role = model.RoleAdmin
	got, err := UpdateUserRole(context.Background(), rowDB(userValues(u), nil, func(sql string, args []any) {
		require.Equal(t, model.RoleAdmin, args[1])
	}), u.ID, model.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, got.Role)

	_, err = UpdateUserRole(context.Background(), rowDB(nil, pgx.ErrNoRows, nil), u.ID, model.RoleAdmin)
	require.ErrorIs(t, err, ErrNotFound)

	u.IsActive = false
	got, err = UpdateUserStatus(context.Background(), rowDB(userValues(u), nil, func(sql string, args []any) {
		require.Equal(t, false, args[1])
	}), u.ID, false)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	_, err = UpdateUserStatus(context.Background(), rowDB(nil, pgx.ErrNoRows, nil), u.ID, true)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListUsers(t *testing.T) {
	u1, u2 := sampleUser(), sampleUser()
	role := model.RoleCitizen
	rows := &database.FakeRows{Data: [][]any{userValues(u1), userValues(u2)}}
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "COUNT(*)")
			require.Equal(t, &role, args[0])
			return database.FakeRow{Values: []any{2}}
		},
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Equal(t, 20, args[1])
			require.Equal(t, 20, args[2])
			return rows, nil
		},
	}
	users, total, err := ListUsers(context.Background(), db, model.UserFilter{Role: &role, Page: model.Page{Page: 2, Limit: 20}})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, users, 2)
	require.True(t, rows.Closed)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") }
	_, _, err = ListUsers(context.Background(), db, model.UserFilter{Page: model.Page{Page: 1, Limit: 20}})
	require.Error(t, err)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		return &database.FakeRows{Data: [][]any{userValues(u1)}, ScanErr: errors.New("scan")}, nil
	}
	_, _, err = ListUsers(context.Background(), db, model.UserFilter{Page: model.Page{Page: 1, Limit: 20}})
	require.Error(t, err)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		return &database.FakeRows{Error: errors.New("rows")}, nil
	}
	_, _, err = ListUsers(context.Background(), db, model.UserFilter{Page: model.Page{Page: 1, Limit: 20}})
	require.Error(t, err)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return database.FakeRow{Err: errors.New("count")} }
	_, _, err = ListUsers(context.Background(), db, model.UserFilter{Page: model.Page{Page: 1, Limit: 20}})
	require.Error(t, err)
}

func TestGetUserStats(t *testing.T) {
	s, err := GetUserStats(context.Background(), rowDB([]any{10, 8, 2, 9, 1}, nil, nil))
	require.NoError(t, err)
	require.Equal(t, model.UserStats{Total: 10, Citizens: 8, Admins: 2, Active: 9, Inactive: 1}, *s)

	_, err = GetUserStats(context.Background(), rowDB(nil, errors.New("db"), nil))
	require.Error(t, err)
}

func execDB(tag string, err error) *database.FakeDB {
	return &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag(tag), err
	}}
}

func TestDeleteUser(t *testing.T) {
	require.NoError(t, DeleteUser(context.Background(), execDB("DELETE 1", nil), uuid.New()))
	require.ErrorIs(t, DeleteUser(context.Background(), execDB("DELETE 0", nil), uuid.New()), ErrNotFound)
	err := DeleteUser(context.Background(), execDB("", errors.New("db")), uuid.New())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}
