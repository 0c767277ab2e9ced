package api

// swagger:model api.CreateCommentRequest
type CreateCommentRequest struct {
	Text string `json:"text" example:"Any update on this?"`
}
