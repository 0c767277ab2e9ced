package api

// UpdateNoticeRequest expires_at 傳 null 代表清除到期時間
// swagger:model api.UpdateNoticeRequest
type UpdateNoticeRequest struct {
	Title     *string      `json:"title" validate:"omitempty,min=1,max=255" example:"Water supply restored"`
	Content   *string      `json:"content" validate:"omitempty,min=1" example:"Supply is back to normal"`
	Priority  *string      `json:"priority" validate:"omitempty,oneof=low normal high" example:"normal"`
	ExpiresAt OptionalTime `json:"expires_at" swaggertype:"string" format:"date-time"`
}
