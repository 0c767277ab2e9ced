package store

import (
	"context"
	"fmt"
	"time"

	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func noticeSelect(source string) string {
	return `SELECT n.id, n.title, n.content, n.priority, n.created_by, n.expires_at,
		n.created_at, n.updated_at, u.name
	 FROM ` + source + ` n
	 JOIN users u ON u.id = n.created_by`
}

func scanNotice(row pgx.Row, n *model.Notice) error {
	return row.Scan(
		&n.ID,
		&n.Title,
		&n.Content,
		&n.Priority,
		&n.CreatedBy,
		&n.ExpiresAt,
		&n.CreatedAt,
		&n.UpdatedAt,
		&n.CreatorName,
	)
}

func CreateNotice(ctx context.Context, db database.DB, n *model.Notice) (*model.Notice, error) {
	priority := n.Priority
	if priority == "" {
		priority = model.NoticeNormal
	}
	row := db.QueryRow(ctx,
		`WITH inserted AS (
			INSERT INTO notices (title, content, priority, created_by, expires_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)
		`+noticeSelect("inserted"),
		n.Title,
		n.Content,
		priority,
		n.CreatedBy,
		n.ExpiresAt,
	)
	created := &model.Notice{}
	if err := scanNotice(row, created); err != nil {
		return nil, fmt.Errorf("CreateNotice: %w", err)
	}
	return created, nil
}

func GetNoticeByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.Notice, error) {
	row := db.QueryRow(ctx, noticeSelect("notices")+` WHERE n.id = $1`, id)
	n := &model.Notice{}
	if err := scanNotice(row, n); err != nil {
		return nil, wrap("GetNoticeByID", err)
	}
	return n, nil
}

// ListActiveNotices 只回傳 now 時仍有效的公告，由新到舊
func ListActiveNotices(ctx context.Context, db database.DB, now time.Time, p model.Page) ([]model.Notice, int, error) {
	const active = ` WHERE (n.expires_at IS NULL OR n.expires_at > $1)`

	total, err := count(ctx, db, "ListActiveNotices",
		`SELECT COUNT(*) FROM notices n`+active,
		now,
	)
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.Query(ctx,
		noticeSelect("notices")+active+`
		 ORDER BY n.created_at DESC
		 LIMIT $2 OFFSET $3`,
		now,
		p.Limit,
		p.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListActiveNotices: %w", err)
	}
	defer rows.Close()

	notices := []model.Notice{}
	for rows.Next() {
		var n model.Notice
		if err := scanNotice(rows, &n); err != nil {
			return nil, 0, fmt.Errorf("ListActiveNotices: %w", err)
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListActiveNotices: %w", err)
	}
	return notices, total, nil
}

func UpdateNotice(ctx context.Context, db database.DB, id uuid.UUID, upd model.NoticeUpdate) (*model.Notice, error) {
	row := db.QueryRow(ctx,
		`WITH updated AS (
			UPDATE notices
			SET title = COALESCE($2, title),
			    content = COALESCE($3, content),
			    priority = COALESCE($4, priority),
			    expires_at = CASE WHEN $6 THEN NULL ELSE COALESCE($5, expires_at) END
			WHERE id = $1
			RETURNING *
		)
		`+noticeSelect("updated"),
		id,
		upd.Title,
		upd.Content,
		upd.Priority,
		upd.ExpiresAt,
		upd.ClearExpiry,
	)
	n := &model.Notice{}
	if err := scanNotice(row, n); err != nil {
		return nil, wrap("UpdateNotice", err)
	}
	return n, nil
}

func DeleteNotice(ctx context.Context, db database.DB, id uuid.UUID) error {
	return execAffecting(ctx, db, "DeleteNotice",
		`DELETE FROM notices WHERE id = $1`,
		id,
	)
}
