package api

import "time"

// swagger:model api.CreateNoticeRequest
type CreateNoticeRequest struct {
	Title     string     `json:"title" validate:"required,max=255" example:"Water supply interruption"`
	Content   string     `json:"content" validate:"required" example:"No water supply in Ward 3 on Sunday"`
	Priority  string     `json:"priority" validate:"omitempty,oneof=low normal high" example:"high"`
	ExpiresAt *time.Time `json:"expires_at" example:"2026-12-31T23:59:59Z"`
}
