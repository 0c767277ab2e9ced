package api

import "github.com/vishnupriya759285/velookara/internal/model"

// swagger:model api.IssueResponse
type IssueResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message,omitempty" example:"Issue created successfully"`
	Issue   *model.Issue `json:"issue"`
}

// swagger:model api.IssueListResponse
type IssueListResponse struct {
	Success    bool             `json:"success" example:"true"`
	Issues     []model.Issue    `json:"issues"`
	Pagination model.Pagination `json:"pagination"`
}

// swagger:model api.IssueStatsResponse
type IssueStatsResponse struct {
	Success bool              `json:"success" example:"true"`
	Stats   *model.IssueStats `json:"stats"`
}
