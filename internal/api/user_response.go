package api

import "github.com/vishnupriya759285/velookara/internal/model"

// swagger:model api.UserResponse
type UserResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Profile updated successfully"`
	User    *model.User `json:"user"`
}
