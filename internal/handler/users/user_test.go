package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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
	getUserByID = store.GetUserByID
	listUsers = store.ListUsers
	updateUserRole = store.UpdateUserRole
	updateUserStatus = store.UpdateUserStatus
	getUserStats = store.GetUserStats
	deleteUser = store.DeleteUser
}

var admin = &model.User{ID: uuid.New(), Name: "Admin", Role: model.RoleAdmin, IsActive: true}

func newParamCtx(method, target, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = handler.NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/users/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	c.Set(middleware.ContextUserKey, admin)
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestListUsersHandler(t *testing.T) {
	db := &database.FakeDB{}

	t.Run("role filter", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(_ context.Context, _ database.DB, f model.UserFilter) ([]model.User, int, error) {
			require.Equal(t, model.RoleAdmin, *f.Role)
			require.Equal(t, defaultLimit, f.Page.Limit)
			return []model.User{*admin}, 1, nil
		}
		c, rec := newParamCtx(http.MethodGet, "/api/users?role=admin", "", "")
		require.NoError(t, ListUsersHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.UserListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Users, 1)
		require.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("invalid role", func(t *testing.T) {
		c, rec := newParamCtx(http.MethodGet, "/api/users?role=moderator", "", "")
		require.NoError(t, ListUsersHandler(db)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetUserHandler(t *testing.T) {
	db := &database.FakeDB{}

	t.Run("invalid id", func(t *testing.T) {
		c, rec := newParamCtx(http.MethodGet, "/", "", "abc")
		require.NoError(t, GetUserHandler(db)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(context.Context, database.DB, uuid.UUID) (*model.User, error) { return nil, store.ErrNotFound }
		c, rec := newParamCtx(http.MethodGet, "/", "", uuid.NewString())
		require.NoError(t, GetUserHandler(db)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "User not found", decodeError(t, rec).Message)
	})
}

func TestUpdateRoleHandler(t *testing.T) {
	db := &database.FakeDB{}
	target := uuid.New()

	t.Run("self", func(t *testing.T) {
		c, rec := newParamCtx(http.MethodPut, "/", `{"role":"citizen"}`, admin.ID.String())
		require.NoError(t, UpdateRoleHandler(db)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "You cannot change the role of your own account", decodeError(t, rec).Message)
	})

	t.Run("invalid role", func(t *testing.T) {
		c, rec := newParamCtx(http.MethodPut, "/", `{"role":"superuser"}`, target.String())
		require.NoError(t, UpdateRoleHandler(db)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("promote", func(t *testing.T) {
		t.Cleanup(restore)
		updateUserRole = func(_ context.Context, _ database.DB, id uuid.UUID, role model.Role) (*model.User, error) {
			require.Equal(t, target, id)
			return &model.User{ID: id, Role: role}, nil
		}
		c, rec := newParamCtx(http.MethodPut, "/", `{"role":"admin"}`, target.String())
		require.NoError(t, UpdateRoleHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUpdateStatusHandler(t *testing.T) {
	db := &database.FakeDB{}
	target := uuid.New()

	t.Run("self", func(t *testing.T) {
		c, rec := newParamCtx(http.MethodPut, "/", `{"isActive":false}`, admin.ID.String())
		require.NoError(t, UpdateStatusHandler(db)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing flag", func(t *testing.T) {
		c, rec := newParamCtx(http.MethodPut, "/", `{}`, target.String())
		require.NoError(t, UpdateStatusHandler(db)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("deactivate", func(t *testing.T) {
		t.Cleanup(restore)
		updateUserStatus = func(_ context.Context, _ database.DB, id uuid.UUID, active bool) (*model.User, error) {
			require.False(t, active)
			return &model.User{ID: id, IsActive: active}, nil
		}
		c, rec := newParamCtx(http.MethodPut, "/", `{"isActive":false}`, target.String())
		require.NoError(t, UpdateStatusHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "User deactivated successfully")
	})
}

func TestUserStatsHandler(t *testing.T) {
	t.Cleanup(restore)
	getUserStats = func(context.Context, database.DB) (*model.UserStats, error) {
		return &model.UserStats{Total: 10, Citizens: 8, Admins: 2, Active: 9, Inactive: 1}, nil
	}
	c, rec := newParamCtx(http.MethodGet, "/", "", "")
	require.NoError(t, UserStatsHandler(&database.FakeDB{}, nil)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.UserStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, api.UserStats{
		Total:    10,
		ByRole:   api.RoleCounts{Citizens: 8, Admins: 2},
		ByStatus: api.StatusCounts{Active: 9, Inactive: 1},
	}, resp.Stats)
}

func TestDeleteUserHandler(t *testing.T) {
	db := &database.FakeDB{}

	t.Run("self", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, uuid.UUID) error {
			t.Fatal("should not delete")
			return nil
		}
		c, rec := newParamCtx(http.MethodDelete, "/", "", admin.ID.String())
		require.NoError(t, DeleteUserHandler(db)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("other", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, uuid.UUID) error { return nil }
		c, rec := newParamCtx(http.MethodDelete, "/", "", uuid.NewString())
		require.NoError(t, DeleteUserHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, uuid.UUID) error { return store.ErrNotFound }
		c, rec := newParamCtx(http.MethodDelete, "/", "", uuid.NewString())
		require.NoError(t, DeleteUserHandler(db)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
