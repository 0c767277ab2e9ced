package api

// swagger:model api.MessageResponse
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Issue deleted successfully"`
}
