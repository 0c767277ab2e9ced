package store

import (
	"context"
	"fmt"

	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, phone, role, is_active, created_at, updated_at`

func scanUser(row pgx.Row, u *model.User, extra ...any) error {
	dest := append([]any{
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	}, extra...)
	return row.Scan(dest...)
}

// GetUserByID 不含密碼
func GetUserByID(ctx context.Context, db database.DB, userID uuid.UUID) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, wrap("GetUserByID", err)
	}
	return u, nil
}

// GetUserByEmail 含密碼雜湊，僅供登入使用
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`, password FROM users WHERE email = LOWER($1)`,
		email,
	)
	u := &model.User{}
	if err := scanUser(row, u, &u.PasswordHash); err != nil {
		return nil, wrap("GetUserByEmail", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password, phone, role)
		 VALUES ($1, LOWER($2), $3, $4, $5)
		 RETURNING `+userColumns,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Phone,
		u.Role,
	)
	created := &model.User{}
	if err := scanUser(row, created); err != nil {
		if database.IsUniqueViolation(err, "") {
			return nil, fmt.Errorf("CreateUser: %w", ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return created, nil
}

func UpdateProfile(ctx context.Context, db database.DB, userID uuid.UUID, upd model.ProfileUpdate) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users
		 SET name = COALESCE($2, name),
		     phone = COALESCE($3, phone)
		 WHERE id = $1
		 RETURNING `+userColumns,
		userID,
		upd.Name,
		upd.Phone,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, wrap("UpdateProfile", err)
	}
	return u, nil
}

func UpdateUserRole(ctx context.Context, db database.DB, userID uuid.UUID, role model.Role) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET role = $2 WHERE id = $1 RETURNING `+userColumns,
		userID,
		role,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, wrap("UpdateUserRole", err)
	}
	return u, nil
}

func UpdateUserStatus(ctx context.Context, db database.DB, userID uuid.UUID, active bool) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET is_active = $2 WHERE id = $1 RETURNING `+userColumns,
		userID,
		active,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, wrap("UpdateUserStatus", err)
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB, f model.UserFilter) ([]model.User, int, error) {
	total, err := count(ctx, db, "ListUsers",
		`SELECT COUNT(*) FROM users WHERE ($1::text IS NULL OR role = $1)`,
		f.Role,
	)
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE ($1::text IS NULL OR role = $1)
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		f.Role,
		f.Page.Limit,
		f.Page.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, 0, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}
	return users, total, nil
}

func GetUserStats(ctx context.Context, db database.DB) (*model.UserStats, error) {
	row := db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE role = 'citizen'),
		        COUNT(*) FILTER (WHERE role = 'admin'),
		        COUNT(*) FILTER (WHERE is_active),
		        COUNT(*) FILTER (WHERE NOT is_active)
		 FROM users`,
	)
	s := &model.UserStats{}
	if err := row.Scan(&s.Total, &s.Citizens, &s.Admins, &s.Active, &s.Inactive); err != nil {
		return nil, fmt.Errorf("GetUserStats: %w", err)
	}
	return s, nil
}

func DeleteUser(ctx context.Context, db database.DB, userID uuid.UUID) error {
	return execAffecting(ctx, db, "DeleteUser",
		`DELETE FROM users WHERE id = $1`,
		userID,
	)
}
