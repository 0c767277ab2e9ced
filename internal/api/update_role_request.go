package api

// swagger:model api.UpdateRoleRequest
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required" example:"admin"`
}
