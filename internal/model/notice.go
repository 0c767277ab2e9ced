package model

import (
	"time"

	"github.com/google/uuid"
)

type NoticePriority string

const (
	NoticeLow    NoticePriority = "low"
	NoticeNormal NoticePriority = "normal"
	NoticeHigh   NoticePriority = "high"
)

func (p NoticePriority) Valid() bool {
	switch p {
	case NoticeLow, NoticeNormal, NoticeHigh:
		return true
	}
	return false
}

type Notice struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	Title     string         `db:"title" json:"title"`
	Content   string         `db:"content" json:"content"`
	Priority  NoticePriority `db:"priority" json:"priority"`
	CreatedBy uuid.UUID      `db:"created_by" json:"created_by"`
	ExpiresAt *time.Time     `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`

	CreatorName string `json:"created_by_name,omitempty"`
}

// Active 以 now 判斷公告是否仍有效，expires_at 為空表示永不過期
func (n *Notice) Active(now time.Time) bool {
	return n.ExpiresAt == nil || n.ExpiresAt.After(now)
}

// NoticeUpdate ClearExpiry 為 true 時清除 expires_at
type NoticeUpdate struct {
	Title       *string
	Content     *string
	Priority    *NoticePriority
	ExpiresAt   *time.Time
	ClearExpiry bool
}
