// Package users 管理員的使用者管理
package users

import (
	"context"
	"net/http"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/middleware"
	"github.com/vishnupriya759285/velookara/internal/model"
	"github.com/vishnupriya759285/velookara/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultLimit = 20
	statsKey     = "stats:users"
	notFoundMsg  = "User not found"
)

var (
	getUserByID      = store.GetUserByID
	listUsers        = store.ListUsers
	updateUserRole   = store.UpdateUserRole
	updateUserStatus = store.UpdateUserStatus
	getUserStats     = store.GetUserStats
	deleteUser       = store.DeleteUser
)

// targetID 解析 path 的使用者 ID，並拒絕管理員對自己操作
func targetID(c echo.Context, action string) (uuid.UUID, error) {
	id, err := handler.ParseID(c, "id")
	if err != nil {
		return uuid.Nil, err
	}
	if me, ok := middleware.CurrentUser(c); ok && me.ID == id {
		return uuid.Nil, apperr.Invalid("You cannot " + action + " your own account")
	}
	return id, nil
}

// ListUsersHandler 使用者列表
// @Summary     List users
// @Description 可依角色篩選，新到舊
// @Tags        users
// @Produce     json
// @Param       role   query     string  false  "citizen | admin"
// @Param       page   query     int     false  "頁碼"  default(1)
// @Param       limit  query     int     false  "每頁筆數"  default(20)
// @Success     200    {object}  api.UserListResponse
// @Failure     400    {object}  api.ErrorResponse
// @Failure     403    {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		f := model.UserFilter{Page: handler.ParsePage(c, defaultLimit)}
		if v := c.QueryParam("role"); v != "" {
			role := model.Role(v)
			if !role.Valid() {
				return handler.Fail(c, apperr.Invalid("Invalid role filter"))
			}
			f.Role = &role
		}
		users, total, err := listUsers(c.Request().Context(), db, f)
		if err != nil {
			return handler.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.UserListResponse{
			Success:    true,
			Users:      users,
			Pagination: model.NewPagination(f.Page, total),
		})
	}
}

// GetUserHandler 透過使用者 ID 取得使用者資訊
// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id   path      string  true  "使用者 ID"
// @Success     200  {object}  api.UserResponse
// @Failure     400  {object}  api.ErrorResponse  "參數錯誤"
// @Failure     404  {object}  api.ErrorResponse  "使用者不存在"
// @Security    BearerAuth
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusOK, api.UserResponse{Success: true, User: user})
	}
}

// UpdateRoleHandler 變更使用者角色
// @Summary     Update user role
// @Description 管理員不可變更自己的角色
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id    path      string                 true  "使用者 ID"
// @Param       body  body      api.UpdateRoleRequest  true  "角色"
// @Success     200   {object}  api.UserResponse
// @Failure     400   {object}  api.ErrorResponse
// @Failure     404   {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/{id}/role [put]
func UpdateRoleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := targetID(c, "change the role of")
		if err != nil {
			return handler.Fail(c, err)
		}
		var req api.UpdateRoleRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}
		role := model.Role(req.Role)
		if !role.Valid() {
			return handler.Fail(c, apperr.Invalid("Invalid role. Must be one of: citizen, admin"))
		}

		user, err := updateUserRole(c.Request().Context(), db, id, role)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusOK, api.UserResponse{
			Success: true,
			Message: "User role updated successfully",
			User:    user,
		})
	}
}

// UpdateStatusHandler 啟用或停用帳號
// @Summary     Update user status
// @Description 停用後該使用者無法登入，管理員不可停用自己
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id    path      string                       true  "使用者 ID"
// @Param       body  body      api.UpdateUserStatusRequest  true  "狀態"
// @Success     200   {object}  api.UserResponse
// @Failure     400   {object}  api.ErrorResponse
// @Failure     404   {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/{id}/status [put]
func UpdateStatusHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := targetID(c, "change the status of")
		if err != nil {
			return handler.Fail(c, err)
		}
		var req api.UpdateUserStatusRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}

		user, err := updateUserStatus(c.Request().Context(), db, id, *req.IsActive)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		msg := "User deactivated successfully"
		if user.IsActive {
			msg = "User activated successfully"
		}
		return c.JSON(http.StatusOK, api.UserResponse{Success: true, Message: msg, User: user})
	}
}

// UserStatsHandler 使用者統計
// @Summary     User statistics
// @Tags        users
// @Produce     json
// @Success     200  {object}  api.UserStatsResponse
// @Failure     403  {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/stats/overview [get]
func UserStatsHandler(db database.DB, sc *handler.StatsCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, err := handler.CachedStats(c.Request().Context(), sc, statsKey, func(ctx context.Context) (*model.UserStats, error) {
			return getUserStats(ctx, db)
		})
		if err != nil {
			return handler.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.UserStatsResponse{
			Success: true,
			Stats: api.UserStats{
				Total:    s.Total,
				ByRole:   api.RoleCounts{Citizens: s.Citizens, Admins: s.Admins},
				ByStatus: api.StatusCounts{Active: s.Active, Inactive: s.Inactive},
			},
		})
	}
}

// DeleteUserHandler 刪除使用者，其回報與留言一併刪除
// @Summary     Delete a user
// @Tags        users
// @Produce     json
// @Param       id   path      string  true  "使用者 ID"
// @Success     200  {object}  api.MessageResponse
// @Failure     400  {object}  api.ErrorResponse
// @Failure     404  {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := targetID(c, "delete")
		if err != nil {
			return handler.Fail(c, err)
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "User deleted successfully"})
	}
}
