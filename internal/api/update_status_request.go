package api

// UpdateUserStatusRequest isActive 必填，使用指標區分未帶與 false
// swagger:model api.UpdateUserStatusRequest
type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required" example:"false"`
}
