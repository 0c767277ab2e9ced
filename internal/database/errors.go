package database

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func pgCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// IsUniqueViolation 回傳是否為唯一鍵衝突；constraint 不為空時需同名
func IsUniqueViolation(err error, constraint string) bool {
	code, name := pgCode(err)
	return code == pgerrcode.UniqueViolation && (constraint == "" || constraint == name)
}

func IsForeignKeyViolation(err error) bool {
	code, _ := pgCode(err)
	return code == pgerrcode.ForeignKeyViolation
}

func IsCheckViolation(err error, constraint string) bool {
	code, name := pgCode(err)
	return code == pgerrcode.CheckViolation && (constraint == "" || constraint == name)
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
