package middleware

import (
	"errors"
	"strings"

	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/model"
	"github.com/vishnupriya759285/velookara/internal/service"
	"github.com/vishnupriya759285/velookara/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextUserKey echo context 中存放 *model.User 的鍵
const ContextUserKey = "user"

var (
	verifyAccessToken = service.VerifyAccessToken
	getUserByID       = store.GetUserByID
)

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", apperr.Unauthorized("No authentication token, access denied")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", apperr.Unauthorized("Invalid authorization header format")
	}
	return strings.TrimSpace(parts[1]), nil
}

// loadUser 驗證 token 並重新讀取使用者，角色以資料庫為準
func loadUser(c echo.Context, db database.DB, secret string) (*model.User, error) {
	token, err := bearerToken(c)
	if err != nil {
		return nil, err
	}
	claims, err := verifyAccessToken(token, secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.Wrap(apperr.Unauthenticated, "Token expired", err)
		}
		return nil, apperr.Wrap(apperr.Unauthenticated, "Invalid token", err)
	}
	userID, err := service.ClaimsUserID(claims)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthenticated, "Invalid token", err)
	}

	user, err := getUserByID(c.Request().Context(), db, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Unauthorized("User not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Authentication error", err)
	}
	if !user.IsActive {
		return nil, apperr.Denied("Account is deactivated")
	}
	return user, nil
}

// Authenticate 要求有效的 Bearer token，並把使用者放進 context
func Authenticate(db database.DB, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := loadUser(c, db, secret)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireRoles 需在 Authenticate 之後使用
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	msg := "Access denied. Required role(s): " + strings.Join(names, ", ")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return apperr.Unauthorized("No authentication token, access denied")
			}
			if !service.HasRole(user, roles...) {
				return apperr.Denied(msg)
			}
			return next(c)
		}
	}
}

// CurrentUser 取出 Authenticate 放入的使用者
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok && user != nil
}
