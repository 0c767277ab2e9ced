package api

import "github.com/vishnupriya759285/velookara/internal/model"

// swagger:model api.NoticeResponse
type NoticeResponse struct {
	Success bool          `json:"success" example:"true"`
	Message string        `json:"message,omitempty" example:"Notice created successfully"`
	Notice  *model.Notice `json:"notice"`
}

// swagger:model api.NoticeListResponse
type NoticeListResponse struct {
	Success    bool             `json:"success" example:"true"`
	Notices    []model.Notice   `json:"notices"`
	Pagination model.Pagination `json:"pagination"`
}
