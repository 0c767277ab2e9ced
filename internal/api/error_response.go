package api

// ErrorResponse 全域錯誤回應
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Issue not found"`
	// 僅在非 production 環境帶出內部錯誤
	Error string `json:"error,omitempty"`
	// 衝突細分代碼: inactive、full、duplicate_phone、duplicate_email
	Code string `json:"code,omitempty" example:"full"`
}
