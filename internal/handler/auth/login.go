package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     Login
// @Description 驗證 Email 與密碼，回傳存取令牌與使用者資料
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body  body      api.LoginRequest  true  "登入資料"
// @Success     200   {object}  api.AuthResponse
// @Failure     400   {object}  api.ErrorResponse
// @Failure     401   {object}  api.ErrorResponse  "帳號或密碼錯誤"
// @Failure     403   {object}  api.ErrorResponse  "帳號已停用"
// @Failure     500   {object}  api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, secret string, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(strings.TrimSpace(req.Email)))
		if errors.Is(err, store.ErrNotFound) {
			return handler.Fail(c, apperr.Unauthorized("Invalid credentials"))
		}
		if err != nil {
			return handler.Fail(c, err)
		}

		// 密碼錯誤與帳號不存在回同樣訊息
		authUser, err := authenticateUser(*user, req.Password)
		if err != nil {
			return handler.Fail(c, apperr.Unauthorized("Invalid credentials"))
		}
		if !authUser.IsActive {
			return handler.Fail(c, apperr.Denied("Account is deactivated"))
		}

		token, err := issueAccessToken(*authUser, secret, ttl)
		if err != nil {
			return handler.Fail(c, err)
		}

		return c.JSON(http.StatusOK, api.AuthResponse{
			Success: true,
			Message: "Login successful",
			Token:   token,
			User:    authUser,
		})
	}
}
