package api

// UpdateProfileRequest 未帶的欄位保持原值
// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255" example:"Asha M"`
	Phone *string `json:"phone" validate:"omitempty,max=20" example:"9876543210"`
}
