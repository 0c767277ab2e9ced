package api

// swagger:model api.RoleCounts
type RoleCounts struct {
	Citizens int `json:"citizens" example:"115"`
	Admins   int `json:"admins" example:"5"`
}

// swagger:model api.StatusCounts
type StatusCounts struct {
	Active   int `json:"active" example:"118"`
	Inactive int `json:"inactive" example:"2"`
}

// swagger:model api.UserStats
type UserStats struct {
	Total    int          `json:"total" example:"120"`
	ByRole   RoleCounts   `json:"by_role"`
	ByStatus StatusCounts `json:"by_status"`
}

// swagger:model api.UserStatsResponse
type UserStatsResponse struct {
	Success bool      `json:"success" example:"true"`
	Stats   UserStats `json:"stats"`
}
