package api

import "time"

// UpdateEventRequest 可清除的欄位傳 null 代表設為空值
// swagger:model api.UpdateEventRequest
type UpdateEventRequest struct {
	Title           *string          `json:"title" validate:"omitempty,min=1,max=255" example:"Free health camp"`
	Description     *string          `json:"description" validate:"omitempty,min=1" example:"Updated schedule"`
	EventDate       *time.Time       `json:"event_date" example:"2026-11-21T09:00:00Z"`
	EventEndDate    OptionalTime     `json:"event_end_date" swaggertype:"string" format:"date-time" example:"2026-11-21T13:00:00Z"`
	Venue           *string          `json:"venue" validate:"omitempty,min=1,max=255" example:"GLP School"`
	District        *string          `json:"district" validate:"omitempty,min=1,max=100" example:"Thrissur"`
	Panchayat       *string          `json:"panchayat" validate:"omitempty,min=1,max=100" example:"Velookara"`
	Ward            Optional[string] `json:"ward" validate:"omitempty,max=50" swaggertype:"string" example:"5"`
	Category        *string          `json:"category" validate:"omitempty,oneof=general health education agriculture sports cultural meeting workshop awareness other" example:"health"`
	MaxParticipants Optional[int]    `json:"max_participants" validate:"omitempty,min=1" swaggertype:"integer" example:"150"`
	ContactPhone    Optional[string] `json:"contact_phone" validate:"omitempty,max=20" swaggertype:"string" example:"9876543210"`
	ContactEmail    Optional[string] `json:"contact_email" validate:"omitempty,email" swaggertype:"string" example:"office@velookara.example"`
	IsActive        *bool            `json:"is_active" example:"true"`
}
