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

func sampleIssue() model.Issue {
	now := time.Now().UTC()
	return model.Issue{
		ID:            uuid.New(),
		Title:         "Pothole near school",
		Description:   "Deep pothole on the main road",
		Category:      model.CategoryRoad,
		Location:      "Ward 4",
		Status:        model.StatusPending,
		Priority:      model.PriorityMedium,
		ReportedBy:    uuid.New(),
		CreatedAt:     now,
		UpdatedAt:     now,
		ReporterName:  "Asha",
		ReporterEmail: "asha@example.com",
	}
}

func issueValues(i model.Issue, withNames bool) []any {
	v := []any{
		i.ID, i.Title, i.Description, string(i.Category), i.Location, string(i.Status), string(i.Priority),
		i.ReportedBy, i.AssignedTo, i.ImageURL, i.CreatedAt, i.UpdatedAt,
	}
	if withNames {
		v = append(v, i.ReporterName, i.ReporterEmail, i.AssigneeName, i.AssigneeEmail)
	}
	return v
}

func TestCreateIssue(t *testing.T) {
	i := sampleIssue()
	i.Priority = ""

	got, err := CreateIssue(context.Background(), rowDB(issueValues(sampleIssue(), false), nil, func(sql string, args []any) {
		require.Contains(t, sql, "'pending'")
		require.Equal(t, model.PriorityMedium, args[4])
		require.Equal(t, i.ReportedBy, args[5])
	}), &i)
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, got.Status)

	fk := &pgconn.PgError{Code: "23503"}
	_, err = CreateIssue(context.Background(), rowDB(nil, fk, nil), &i)
	require.ErrorIs(t, err, ErrInvalidReference)

	_, err = CreateIssue(context.Background(), rowDB(nil, errors.New("db"), nil), &i)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidReference)
}

func TestGetIssueByID(t *testing.T) {
	i := sampleIssue()
	got, err := GetIssueByID(context.Background(), rowDB(issueValues(i, true), nil, nil), i.ID)
	require.NoError(t, err)
	require.Equal(t, "Asha", got.ReporterName)
	require.Nil(t, got.AssigneeName)

	_, err = GetIssueByID(context.Background(), rowDB(nil, pgx.ErrNoRows, nil), i.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListIssues(t *testing.T) {
	i := sampleIssue()
	status := model.StatusPending
	reporter := uuid.New()
	f := model.IssueFilter{Status: &status, ReportedBy: &reporter, Page: model.Page{Page: 3, Limit: 10}}

	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Len(t, args, 4)
			require.Equal(t, &status, args[0])
			require.Nil(t, args[1])
			require.Equal(t, &reporter, args[3])
			return database.FakeRow{Values: []any{21}}
		},
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "ORDER BY i.created_at DESC")
			require.Equal(t, 10, args[4])
			require.Equal(t, 20, args[5])
			return &database.FakeRows{Data: [][]any{issueValues(i, true)}}, nil
		},
	}
	issues, total, err := ListIssues(context.Background(), db, f)
	require.NoError(t, err)
	require.Equal(t, 21, total)
	require.Len(t, issues, 1)
	require.Equal(t, i.ID, issues[0].ID)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") }
	_, _, err = ListIssues(context.Background(), db, f)
	require.Error(t, err)
}

func TestUpdateIssue(t *testing.T) {
	i := sampleIssue()
	title := "Updated"
	got, err := UpdateIssue(context.Background(), rowDB(issueValues(i, true), nil, func(sql string, args []any) {
		require.Len(t, args, 8)
		require.Equal(t, &title, args[1])
		require.Equal(t, false, args[7])
		require.NotContains(t, sql, "status =")
		require.NotContains(t, sql, "reported_by =")
		require.NotContains(t, sql, "assigned_to =")
	}), i.ID, model.IssueUpdate{Title: &title})
	require.NoError(t, err)
	require.Equal(t, i.ID, got.ID)

	_, err = UpdateIssue(context.Background(), rowDB(issueValues(i, true), nil, func(sql string, args []any) {
		require.Contains(t, sql, "image_url = CASE WHEN $8 THEN NULL ELSE COALESCE($7, image_url) END")
		require.Equal(t, true, args[7])
	}), i.ID, model.IssueUpdate{ClearImageURL: true})
	require.NoError(t, err)

	_, err = UpdateIssue(context.Background(), rowDB(nil, pgx.ErrNoRows, nil), i.ID, model.IssueUpdate{Title: &title})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateIssueStatus(t *testing.T) {
	i := sampleIssue()
	i.Status = model.StatusResolved
	got, err := UpdateIssueStatus(context.Background(), rowDB(issueValues(i, true), nil, func(sql string, args []any) {
		require.Equal(t, model.StatusResolved, args[1])
	}), i.ID, model.StatusResolved)
	require.NoError(t, err)
	require.Equal(t, model.StatusResolved, got.Status)

	_, err = UpdateIssueStatus(context.Background(), rowDB(nil, pgx.ErrNoRows, nil), i.ID, model.StatusClosed)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAssignIssue(t *testing.T) {
	i := sampleIssue()
	assignee := uuid.New()
	name := "Officer"
	i.AssignedTo = &assignee
	i.AssigneeName = &name

	got, err := AssignIssue(context.Background(), rowDB(issueValues(i, true), nil, func(sql string, args []any) {
		require.Equal(t, &assignee, args[1])
	}), i.ID, &assignee)
	require.NoError(t, err)
	require.Equal(t, assignee, *got.AssignedTo)
	require.Equal(t, "Officer", *got.AssigneeName)

	i.AssignedTo, i.AssigneeName = nil, nil
	got, err = AssignIssue(context.Background(), rowDB(issueValues(i, true), nil, func(sql string, args []any) {
		require.Nil(t, args[1])
	}), i.ID, nil)
	require.NoError(t, err)
	require.Nil(t, got.AssignedTo)

	_, err = AssignIssue(context.Background(), rowDB(nil, &pgconn.PgError{Code: "23503"}, nil), i.ID, &assignee)
	require.ErrorIs(t, err, ErrInvalidReference)

	_, err = AssignIssue(context.Background(), rowDB(nil, pgx.ErrNoRows, nil), i.ID, &assignee)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIssue(t *testing.T) {
	require.NoError(t, DeleteIssue(context.Background(), execDB("DELETE 1", nil), uuid.New()))
	require.ErrorIs(t, DeleteIssue(context.Background(), execDB("DELETE 0", nil), uuid.New()), ErrNotFound)
}

func TestGetIssueStats(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			return database.FakeRow{Values: []any{12, 5, 3, 2, 2, 4, 1}}
		},
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "GROUP BY category")
			return &database.FakeRows{Data: [][]any{{"road", 7}, {"water", 5}}}, nil
		},
	}
	s, err := GetIssueStats(context.Background(), db)
	require.NoError(t, err)
	require.Equal(t, 12, s.Total)
	require.Equal(t, 5, s.Pending)
	require.Equal(t, 3, s.InProgress)
	require.Equal(t, 2, s.Resolved)
	require.Equal(t, 2, s.Closed)
	require.Equal(t, 4, s.HighPriority)
	require.Equal(t, 1, s.CriticalPriority)
	require.Equal(t, []model.CategoryCount{
		{Category: model.CategoryRoad, Count: 7},
		{Category: model.CategoryWater, Count: 5},
	}, s.ByCategory)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") }
	_, err = GetIssueStats(context.Background(), db)
	require.Error(t, err)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return database.FakeRow{Err: errors.New("row")} }
	_, err = GetIssueStats(context.Background(), db)
	require.Error(t, err)
}
