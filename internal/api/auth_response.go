package api

import "github.com/vishnupriya759285/velookara/internal/model"

// AuthResponse 註冊與登入成功的回應
// swagger:model api.AuthResponse
type AuthResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Login successful"`
	Token   string      `json:"token" example:"eyJhbGciOi..."`
	User    *model.User `json:"user"`
}
