package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,max=255" example:"Asha Menon"`
	Email    string  `json:"email" validate:"required,email,max=255" example:"asha@example.com"`
	Password string  `json:"password" validate:"required,min=6,max=72" example:"secret123"`
	Phone    *string `json:"phone" validate:"omitempty,max=20" example:"9876543210"`
}
