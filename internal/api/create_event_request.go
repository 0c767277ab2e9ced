package api

import "time"

// swagger:model api.CreateEventRequest
type CreateEventRequest struct {
	Title           string     `json:"title" validate:"required,max=255" example:"Free health camp"`
	Description     string     `json:"description" validate:"required" example:"General checkup and eye screening"`
	EventDate       time.Time  `json:"event_date" validate:"required" example:"2026-11-20T09:00:00Z"`
	EventEndDate    *time.Time `json:"event_end_date" example:"2026-11-20T13:00:00Z"`
	Venue           string     `json:"venue" validate:"required,max=255" example:"Panchayat community hall"`
	District        string     `json:"district" validate:"required,max=100" example:"Thrissur"`
	Panchayat       string     `json:"panchayat" validate:"required,max=100" example:"Velookara"`
	Ward            *string    `json:"ward" validate:"omitempty,max=50" example:"4"`
	Category        string     `json:"category" validate:"omitempty,oneof=general health education agriculture sports cultural meeting workshop awareness other" example:"health"`
	MaxParticipants *int       `json:"max_participants" validate:"omitempty,min=1" example:"100"`
	ContactPhone    *string    `json:"contact_phone" validate:"omitempty,max=20" example:"9876543210"`
	ContactEmail    *string    `json:"contact_email" validate:"omitempty,email" example:"office@velookara.example"`
}
