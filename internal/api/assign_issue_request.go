package api

// AssignIssueRequest assignedTo 為 null 或省略時取消指派
// swagger:model api.AssignIssueRequest
type AssignIssueRequest struct {
	AssignedTo *string `json:"assignedTo" validate:"omitempty,uuid" example:"6f1c2d3e-0000-4000-8000-000000000001"`
}
