// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSecretNotSet       = errors.New("JWT_SECRET not set")
)

// CustomClaims 定義 JWT 負載內容；角色不放進 token，每次請求重新查詢
type CustomClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// AuthenticateUser 比對明文密碼，成功回傳使用者
func AuthenticateUser(user model.User, password string) (*model.User, error) {
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// IssueAccessToken 依據使用者資訊與 TTL 產生 JWT
func IssueAccessToken(user model.User, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrSecretNotSet
	}

	now := time.Now()
	claims := CustomClaims{
		UserID: user.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken 驗證並解析 JWT 令牌
func VerifyAccessToken(tokenString, secret string) (*CustomClaims, error) {
	if secret == "" {
		return nil, ErrSecretNotSet
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// ClaimsUserID 解析 userId 欄位
func ClaimsUserID(c *CustomClaims) (uuid.UUID, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid userId claim: %w", err)
	}
	return id, nil
}
