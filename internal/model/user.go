// File: internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Role 使用者角色，只有 citizen 與 admin 兩種
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password" json:"-"`
	Phone        *string   `db:"phone" json:"phone"`
	Role         Role      `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ProfileUpdate 使用者自行修改的欄位，nil 表示不變
type ProfileUpdate struct {
	Name  *string
	Phone *string
}

type UserFilter struct {
	Role *Role
	Page Page
}

type UserStats struct {
	Total    int `json:"total"`
	Citizens int `json:"citizens"`
	Admins   int `json:"admins"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
