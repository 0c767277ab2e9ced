package api

import "time"

// swagger:model api.HealthResponse
type HealthResponse struct {
	Status    string    `json:"status" example:"OK"`
	Message   string    `json:"message" example:"Velookara civic portal API is running"`
	Timestamp time.Time `json:"timestamp"`
}

// swagger:model api.ReadinessResponse
type ReadinessResponse struct {
	Status    string            `json:"status" example:"OK"`
	Checks    map[string]string `json:"checks"`
	Timestamp time.Time         `json:"timestamp"`
}
