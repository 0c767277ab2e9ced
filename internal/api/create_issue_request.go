package api

// swagger:model api.CreateIssueRequest
type CreateIssueRequest struct {
	Title       string  `json:"title" validate:"required,max=255" example:"Broken streetlight"`
	Description string  `json:"description" validate:"required" example:"The streetlight near the school has been off for a week"`
	Category    string  `json:"category" validate:"required,oneof=infrastructure water electricity road sanitation healthcare education agriculture environment other" example:"electricity"`
	Location    string  `json:"location" validate:"required,max=255" example:"Ward 4, near GLP School"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high critical" example:"high"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url" example:"https://example.com/light.jpg"`
}
