package notices

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/middleware"
	"github.com/vishnupriya759285/velookara/internal/model"
	"github.com/vishnupriya759285/velookara/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restore() {
	createNotice = store.CreateNotice
	getNoticeByID = store.GetNoticeByID
	listActiveNotices = store.ListActiveNotices
	updateNotice = store.UpdateNotice
	deleteNotice = store.DeleteNotice
	now = time.Now
}

var admin = &model.User{ID: uuid.New(), Role: model.RoleAdmin, IsActive: true}

func newCtx(method, target, body string, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = handler.NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	c.Set(middleware.ContextUserKey, admin)
	return c, rec
}

func TestCreateNoticeHandler(t *testing.T) {
	db := &database.FakeDB{}

	t.Run("validation", func(t *testing.T) {
		c, rec := newCtx(http.MethodPost, "/", `{"title":"x","content":"y","priority":"urgent"}`, "")
		require.NoError(t, CreateNoticeHandler(db)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		createNotice = func(_ context.Context, _ database.DB, n *model.Notice) (*model.Notice, error) {
			require.Equal(t, admin.ID, n.CreatedBy)
			require.NotNil(t, n.ExpiresAt)
			out := *n
			out.ID = uuid.New()
			out.Priority = model.NoticeNormal
			return &out, nil
		}
		c, rec := newCtx(http.MethodPost, "/", `{"title":"Water","content":"Off on Sunday","expires_at":"2030-01-01T00:00:00Z"}`, "")
		require.NoError(t, CreateNoticeHandler(db)(c))
		require.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestListNoticesHandler(t *testing.T) {
	t.Cleanup(restore)
	db := &database.FakeDB{}
	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }

	var seen []time.Time
	listActiveNotices = func(_ context.Context, _ database.DB, at time.Time, p model.Page) ([]model.Notice, int, error) {
		seen = append(seen, at)
		require.Equal(t, model.Page{Page: 1, Limit: defaultLimit}, p)
		return []model.Notice{{ID: uuid.New(), Title: "a"}}, 1, nil
	}

	c, rec := newCtx(http.MethodGet, "/", "", "")
	require.NoError(t, ListNoticesHandler(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	later := fixed.Add(time.Hour)
	now = func() time.Time { return later }
	c, _ = newCtx(http.MethodGet, "/", "", "")
	require.NoError(t, ListNoticesHandler(db)(c))
	require.Equal(t, []time.Time{fixed, later}, seen)

	var resp api.NoticeListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Pagination.Pages)
}

func TestGetNoticeHandler(t *testing.T) {
	t.Cleanup(restore)
	db := &database.FakeDB{}
	getNoticeByID = func(context.Context, database.DB, uuid.UUID) (*model.Notice, error) { return nil, store.ErrNotFound }

	c, rec := newCtx(http.MethodGet, "/", "", uuid.NewString())
	require.NoError(t, GetNoticeHandler(db)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newCtx(http.MethodGet, "/", "", "nope")
	require.NoError(t, GetNoticeHandler(db)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateNoticeHandler(t *testing.T) {
	db := &database.FakeDB{}
	id := uuid.New()

	cases := []struct {
		name  string
		body  string
		check func(t *testing.T, upd model.NoticeUpdate)
	}{
		{"absent expiry kept", `{"title":"  New "}`, func(t *testing.T, upd model.NoticeUpdate) {
			require.Equal(t, "New", *upd.Title)
			require.Nil(t, upd.ExpiresAt)
			require.False(t, upd.ClearExpiry)
		}},
		{"null expiry cleared", `{"expires_at":null}`, func(t *testing.T, upd model.NoticeUpdate) {
			require.Nil(t, upd.ExpiresAt)
			require.True(t, upd.ClearExpiry)
		}},
		{"new expiry", `{"expires_at":"2030-01-01T00:00:00Z","priority":"high"}`, func(t *testing.T, upd model.NoticeUpdate) {
			require.Equal(t, 2030, upd.ExpiresAt.Year())
			require.False(t, upd.ClearExpiry)
			require.Equal(t, model.NoticeHigh, *upd.Priority)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(restore)
			updateNotice = func(_ context.Context, _ database.DB, got uuid.UUID, upd model.NoticeUpdate) (*model.Notice, error) {
				require.Equal(t, id, got)
				tc.check(t, upd)
				return &model.Notice{ID: id}, nil
			}
			c, rec := newCtx(http.MethodPut, "/", tc.body, id.String())
			require.NoError(t, UpdateNoticeHandler(db)(c))
			require.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("blank title", func(t *testing.T) {
		t.Cleanup(restore)
		updateNotice = func(context.Context, database.DB, uuid.UUID, model.NoticeUpdate) (*model.Notice, error) {
			t.Fatal("should not update")
			return nil, nil
		}
		c, rec := newCtx(http.MethodPut, "/", `{"title":"   ","content":"ok"}`, id.String())
		require.NoError(t, UpdateNoticeHandler(db)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Fields cannot be empty", resp.Message)
	})

	t.Run("missing", func(t *testing.T) {
		t.Cleanup(restore)
		updateNotice = func(context.Context, database.DB, uuid.UUID, model.NoticeUpdate) (*model.Notice, error) {
			return nil, store.ErrNotFound
		}
		c, rec := newCtx(http.MethodPut, "/", `{"title":"x"}`, id.String())
		require.NoError(t, UpdateNoticeHandler(db)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteNoticeHandler(t *testing.T) {
	t.Cleanup(restore)
	db := &database.FakeDB{}
	deleteNotice = func(context.Context, database.DB, uuid.UUID) error { return nil }
	c, rec := newCtx(http.MethodDelete, "/", "", uuid.NewString())
	require.NoError(t, DeleteNoticeHandler(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	deleteNotice = func(context.Context, database.DB, uuid.UUID) error { return store.ErrNotFound }
	c, rec = newCtx(http.MethodDelete, "/", "", uuid.NewString())
	require.NoError(t, DeleteNoticeHandler(db)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
