package api

import "github.com/vishnupriya759285/velookara/internal/model"

// swagger:model api.EventResponse
type EventResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message,omitempty" example:"Event created successfully"`
	Event   *model.Event `json:"event"`
}

// swagger:model api.EventListResponse
type EventListResponse struct {
	Success    bool             `json:"success" example:"true"`
	Events     []model.Event    `json:"events"`
	Pagination model.Pagination `json:"pagination"`
}
