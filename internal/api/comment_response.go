package api

import "github.com/vishnupriya759285/velookara/internal/model"

// swagger:model api.CommentResponse
type CommentResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message,omitempty" example:"Comment added successfully"`
	Comment *model.Comment `json:"comment"`
}

// swagger:model api.CommentListResponse
type CommentListResponse struct {
	Success  bool            `json:"success" example:"true"`
	Comments []model.Comment `json:"comments"`
}
