package api

// RegisterEventRequest 公開報名表單，num_attendees 省略時為 1
// swagger:model api.RegisterEventRequest
type RegisterEventRequest struct {
	Name         string  `json:"name" validate:"required,max=255" example:"Ravi K"`
	Phone        string  `json:"phone" validate:"required,max=20" example:"9999999999"`
	Email        *string `json:"email" validate:"omitempty,email" example:"ravi@example.com"`
	Ward         *string `json:"ward" validate:"omitempty,max=50" example:"4"`
	NumAttendees *int    `json:"num_attendees" validate:"omitempty,min=1" example:"2"`
}
