package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新使用者，角色固定為 citizen
// @Summary     Register
// @Description 建立市民帳號並回傳 JWT
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body  body      api.RegisterRequest  true  "註冊資料"
// @Success     201   {object}  api.AuthResponse
// @Failure     400   {object}  api.ErrorResponse  "參數錯誤或 Email 已存在"
// @Failure     500   {object}  api.ErrorResponse  "伺服器錯誤"
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, secret string, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return handler.Fail(c, err)
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         strings.TrimSpace(req.Name),
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			PasswordHash: hash,
			Phone:        req.Phone,
			Role:         model.RoleCitizen,
		})
		if err != nil {
			return handler.Fail(c, err)
		}

		token, err := issueAccessToken(*user, secret, ttl)
		if err != nil {
			return handler.Fail(c, err)
		}

		return c.JSON(http.StatusCreated, api.AuthResponse{
			Success: true,
			Message: "User registered successfully",
			Token:   token,
			User:    user,
		})
	}
}
