package api

import "github.com/vishnupriya759285/velookara/internal/model"

// swagger:model api.RegistrationResponse
type RegistrationResponse struct {
	Success      bool                `json:"success" example:"true"`
	Message      string              `json:"message" example:"Registration successful!"`
	Registration *model.Registration `json:"registration"`
}

// swagger:model api.RegistrationListResponse
type RegistrationListResponse struct {
	Success       bool                    `json:"success" example:"true"`
	Registrations []model.Registration    `json:"registrations"`
	Stats         model.RegistrationStats `json:"stats"`
}
