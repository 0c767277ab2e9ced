package api

import "github.com/vishnupriya759285/velookara/internal/model"

// swagger:model api.UserListResponse
type UserListResponse struct {
	Success    bool             `json:"success" example:"true"`
	Users      []model.User     `json:"users"`
	Pagination model.Pagination `json:"pagination"`
}
