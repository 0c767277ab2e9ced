package api

// swagger:model api.UpdateIssueStatusRequest
type UpdateIssueStatusRequest struct {
	Status string `json:"status" example:"in-progress"`
}
