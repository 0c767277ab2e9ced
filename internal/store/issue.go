package store

import (
	"context"
	"fmt"

	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const issueReturning = `id, title, description, category, location, status, priority,
	reported_by, assigned_to, image_url, created_at, updated_at`

// issueSelect 讀取問題並帶出回報者與負責人姓名，source 為資料表或 CTE 名稱
func issueSelect(source string) string {
	return `SELECT i.id, i.title, i.description, i.category, i.location, i.status, i.priority,
		i.reported_by, i.assigned_to, i.image_url, i.created_at, i.updated_at,
		u.name, u.email, a.name, a.email
	 FROM ` + source + ` i
	 JOIN users u ON u.id = i.reported_by
	 LEFT JOIN users a ON a.id = i.assigned_to`
}

func scanIssue(row pgx.Row, i *model.Issue, withNames bool) error {
	dest := []any{
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Category,
		&i.Location,
		&i.Status,
		&i.Priority,
		&i.ReportedBy,
		&i.AssignedTo,
		&i.ImageURL,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
	if withNames {
		dest = append(dest, &i.ReporterName, &i.ReporterEmail, &i.AssigneeName, &i.AssigneeEmail)
	}
	return row.Scan(dest...)
}

// CreateIssue 新問題狀態固定為 pending
func CreateIssue(ctx context.Context, db database.DB, i *model.Issue) (*model.Issue, error) {
	priority := i.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	row := db.QueryRow(ctx,
		`INSERT INTO issues (title, description, category, location, status, priority, reported_by, image_url)
		 VALUES ($1, $2, $3, $4, 'pending', $5, $6, $7)
		 RETURNING `+issueReturning,
		i.Title,
		i.Description,
		i.Category,
		i.Location,
		priority,
		i.ReportedBy,
		i.ImageURL,
	)
	created := &model.Issue{}
	if err := scanIssue(row, created, false); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("CreateIssue: %w", ErrInvalidReference)
		}
		return nil, fmt.Errorf("CreateIssue: %w", err)
	}
	return created, nil
}

func GetIssueByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.Issue, error) {
	row := db.QueryRow(ctx, issueSelect("issues")+` WHERE i.id = $1`, id)
	i := &model.Issue{}
	if err := scanIssue(row, i, true); err != nil {
		return nil, wrap("GetIssueByID", err)
	}
	return i, nil
}

const issueFilterWhere = `
	 WHERE ($1::text IS NULL OR i.status = $1)
	   AND ($2::text IS NULL OR i.category = $2)
	   AND ($3::text IS NULL OR i.priority = $3)
	   AND ($4::uuid IS NULL OR i.reported_by = $4)`

func ListIssues(ctx context.Context, db database.DB, f model.IssueFilter) ([]model.Issue, int, error) {
	total, err := count(ctx, db, "ListIssues",
		`SELECT COUNT(*) FROM issues i`+issueFilterWhere,
		f.Status, f.Category, f.Priority, f.ReportedBy,
	)
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.Query(ctx,
		issueSelect("issues")+issueFilterWhere+`
		 ORDER BY i.created_at DESC
		 LIMIT $5 OFFSET $6`,
		f.Status, f.Category, f.Priority, f.ReportedBy,
		f.Page.Limit, f.Page.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListIssues: %w", err)
	}
	defer rows.Close()

	issues := []model.Issue{}
	for rows.Next() {
		var i model.Issue
		if err := scanIssue(rows, &i, true); err != nil {
			return nil, 0, fmt.Errorf("ListIssues: %w", err)
		}
		issues = append(issues, i)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListIssues: %w", err)
	}
	return issues, total, nil
}

// UpdateIssue 只更新允許的內容欄位，nil 欄位保留原值，ClearImageURL 移除圖片
func UpdateIssue(ctx context.Context, db database.DB, id uuid.UUID, upd model.IssueUpdate) (*model.Issue, error) {
	row := db.QueryRow(ctx,
		`WITH updated AS (
			UPDATE issues
			SET title = COALESCE($2, title),
			    description = COALESCE($3, description),
			    category = COALESCE($4, category),
			    location = COALESCE($5, location),
			    priority = COALESCE($6, priority),
			    image_url = CASE WHEN $8 THEN NULL ELSE COALESCE($7, image_url) END
			WHERE id = $1
			RETURNING *
		)
		`+issueSelect("updated"),
		id,
		upd.Title,
		upd.Description,
		upd.Category,
		upd.Location,
		upd.Priority,
		upd.ImageURL,
		upd.ClearImageURL,
	)
	i := &model.Issue{}
	if err := scanIssue(row, i, true); err != nil {
		return nil, wrap("UpdateIssue", err)
	}
	return i, nil
}

func UpdateIssueStatus(ctx context.Context, db database.DB, id uuid.UUID, status model.IssueStatus) (*model.Issue, error) {
	row := db.QueryRow(ctx,
		`WITH updated AS (
			UPDATE issues SET status = $2 WHERE id = $1 RETURNING *
		)
		`+issueSelect("updated"),
		id,
		status,
	)
	i := &model.Issue{}
	if err := scanIssue(row, i, true); err != nil {
		return nil, wrap("UpdateIssueStatus", err)
	}
	return i, nil
}

// AssignIssue assignee 為 nil 時取消指派
func AssignIssue(ctx context.Context, db database.DB, id uuid.UUID, assignee *uuid.UUID) (*model.Issue, error) {
	row := db.QueryRow(ctx,
		`WITH updated AS (
			UPDATE issues SET assigned_to = $2 WHERE id = $1 RETURNING *
		)
		`+issueSelect("updated"),
		id,
		assignee,
	)
	i := &model.Issue{}
	if err := scanIssue(row, i, true); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("AssignIssue: %w", ErrInvalidReference)
		}
		return nil, wrap("AssignIssue", err)
	}
	return i, nil
}

func DeleteIssue(ctx context.Context, db database.DB, id uuid.UUID) error {
	return execAffecting(ctx, db, "DeleteIssue",
		`DELETE FROM issues WHERE id = $1`,
		id,
	)
}

func GetIssueStats(ctx context.Context, db database.DB) (*model.IssueStats, error) {
	row := db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'pending'),
		        COUNT(*) FILTER (WHERE status = 'in-progress'),
		        COUNT(*) FILTER (WHERE status = 'resolved'),
		        COUNT(*) FILTER (WHERE status = 'closed'),
		        COUNT(*) FILTER (WHERE priority = 'high'),
		        COUNT(*) FILTER (WHERE priority = 'critical')
		 FROM issues`,
	)
	s := &model.IssueStats{}
	if err := row.Scan(
		&s.Total,
		&s.Pending,
		&s.InProgress,
		&s.Resolved,
		&s.Closed,
		&s.HighPriority,
		&s.CriticalPriority,
	); err != nil {
		return nil, fmt.Errorf("GetIssueStats: %w", err)
	}

	rows, err := db.Query(ctx,
		`SELECT category, COUNT(*) FROM issues GROUP BY category ORDER BY COUNT(*) DESC, category`,
	)
	if err != nil {
		return nil, fmt.Errorf("GetIssueStats: %w", err)
	}
	defer rows.Close()

	s.ByCategory = []model.CategoryCount{}
	for rows.Next() {
		var c model.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("GetIssueStats: %w", err)
		}
		s.ByCategory = append(s.ByCategory, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetIssueStats: %w", err)
	}
	return s, nil
}
