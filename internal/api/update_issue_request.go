package api

// UpdateIssueRequest 只接受內容欄位；reported_by、status、assigned_to 不在此列。
// image_url 傳 null 代表移除圖片
// swagger:model api.UpdateIssueRequest
type UpdateIssueRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=255" example:"Broken streetlight"`
	Description *string          `json:"description" validate:"omitempty,min=1" example:"Still not fixed"`
	Category    *string          `json:"category" validate:"omitempty,oneof=infrastructure water electricity road sanitation healthcare education agriculture environment other" example:"electricity"`
	Location    *string          `json:"location" validate:"omitempty,min=1,max=255" example:"Ward 4"`
	Priority    *string          `json:"priority" validate:"omitempty,oneof=low medium high critical" example:"critical"`
	ImageURL    Optional[string] `json:"image_url" validate:"omitempty,url" swaggertype:"string" example:"https://example.com/light.jpg"`
}
