package auth

import (
	"net/http"
	"strings"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/middleware"
	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/labstack/echo/v4"
)

// MeHandler 回傳目前登入的使用者
// @Summary     Current user
// @Description 取得目前登入使用者資料
// @Tags        auth
// @Produce     json
// @Success     200  {object}  api.UserResponse
// @Failure     401  {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.Fail(c, apperr.Unauthorized("Not authenticated"))
		}
		return c.JSON(http.StatusOK, api.UserResponse{Success: true, User: user})
	}
}

// UpdateProfileHandler 修改自己的姓名或電話
// @Summary     Update profile
// @Description 只允許修改 name 與 phone，未帶的欄位保持原值
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body  body      api.UpdateProfileRequest  true  "個人資料"
// @Success     200   {object}  api.UserResponse
// @Failure     400   {object}  api.ErrorResponse
// @Failure     401   {object}  api.ErrorResponse
// @Failure     500   {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /auth/profile [put]
func UpdateProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.Fail(c, apperr.Unauthorized("Not authenticated"))
		}

		var req api.UpdateProfileRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return handler.Fail(c, apperr.Invalid("name cannot be empty"))
			}
			req.Name = &name
		}

		updated, err := updateProfile(c.Request().Context(), db, user.ID, model.ProfileUpdate{
			Name:  req.Name,
			Phone: req.Phone,
		})
		if err != nil {
			return handler.Fail(c, handler.Translate(err, "User not found"))
		}

		return c.JSON(http.StatusOK, api.UserResponse{
			Success: true,
			Message: "Profile updated successfully",
			User:    updated,
		})
	}
}
