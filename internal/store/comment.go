package store

import (
	"context"
	"fmt"

	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func commentSelect(source string) string {
	return `SELECT c.id, c.issue_id, c.user_id, c.text, c.created_at, u.name, u.email
	 FROM ` + source + ` c
	 JOIN users u ON u.id = c.user_id`
}

func scanComment(row pgx.Row, c *model.Comment) error {
	return row.Scan(
		&c.ID,
		&c.IssueID,
		&c.UserID,
		&c.Text,
		&c.CreatedAt,
		&c.UserName,
		&c.UserEmail,
	)
}

// CreateComment 問題不存在時回傳 ErrNotFound
func CreateComment(ctx context.Context, db database.DB, c *model.Comment) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`WITH inserted AS (
			INSERT INTO comments (issue_id, user_id, text)
			VALUES ($1, $2, $3)
			RETURNING *
		)
		`+commentSelect("inserted"),
		c.IssueID,
		c.UserID,
		c.Text,
	)
	created := &model.Comment{}
	if err := scanComment(row, created); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("CreateComment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("CreateComment: %w", err)
	}
	return created, nil
}

// ListComments 依建立時間由新到舊
func ListComments(ctx context.Context, db database.DB, issueID uuid.UUID) ([]model.Comment, error) {
	rows, err := db.Query(ctx,
		commentSelect("comments")+`
		 WHERE c.issue_id = $1
		 ORDER BY c.created_at DESC`,
		issueID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListComments: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, fmt.Errorf("ListComments: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListComments: %w", err)
	}
	return comments, nil
}

func GetComment(ctx context.Context, db database.DB, issueID, commentID uuid.UUID) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		commentSelect("comments")+` WHERE c.id = $1 AND c.issue_id = $2`,
		commentID,
		issueID,
	)
	c := &model.Comment{}
	if err := scanComment(row, c); err != nil {
		return nil, wrap("GetComment", err)
	}
	return c, nil
}

func DeleteComment(ctx context.Context, db database.DB, commentID uuid.UUID) error {
	return execAffecting(ctx, db, "DeleteComment",
		`DELETE FROM comments WHERE id = $1`,
		commentID,
	)
}
