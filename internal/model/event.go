package model

import (
	"time"

	"github.com/google/uuid"
)

type EventCategory string

const (
	EventGeneral     EventCategory = "general"
	EventHealth      EventCategory = "health"
	EventEducation   EventCategory = "education"
	EventAgriculture EventCategory = "agriculture"
	EventSports      EventCategory = "sports"
	EventCultural    EventCategory = "cultural"
	EventMeeting     EventCategory = "meeting"
	EventWorkshop    EventCategory = "workshop"
	EventAwareness   EventCategory = "awareness"
	EventOther       EventCategory = "other"
)

func (c EventCategory) Valid() bool {
	switch c {
	case EventGeneral, EventHealth, EventEducation, EventAgriculture, EventSports,
		EventCultural, EventMeeting, EventWorkshop, EventAwareness, EventOther:
		return true
	}
	return false
}

type Event struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	Title           string        `db:"title" json:"title"`
	Description     string        `db:"description" json:"description"`
	EventDate       time.Time     `db:"event_date" json:"event_date"`
	EventEndDate    *time.Time    `db:"event_end_date" json:"event_end_date"`
	Venue           string        `db:"venue" json:"venue"`
	District        string        `db:"district" json:"district"`
	Panchayat       string        `db:"panchayat" json:"panchayat"`
	Ward            *string       `db:"ward" json:"ward"`
	Category        EventCategory `db:"category" json:"category"`
	MaxParticipants *int          `db:"max_participants" json:"max_participants"`
	ContactPhone    *string       `db:"contact_phone" json:"contact_phone"`
	ContactEmail    *string       `db:"contact_email" json:"contact_email"`
	CreatedBy       uuid.UUID     `db:"created_by" json:"created_by"`
	IsActive        bool          `db:"is_active" json:"is_active"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`

	CreatorName       string `json:"creator_name,omitempty"`
	RegistrationCount int    `json:"registration_count"`
	TotalAttendees    int    `json:"total_attendees"`
}

// EventUpdate nil 欄位保留原值；Clear 開頭的旗標將可為空的欄位設為 NULL
type EventUpdate struct {
	Title           *string
	Description     *string
	EventDate       *time.Time
	EventEndDate    *time.Time
	Venue           *string
	District        *string
	Panchayat       *string
	Ward            *string
	Category        *EventCategory
	MaxParticipants *int
	ContactPhone    *string
	ContactEmail    *string
	IsActive        *bool

	ClearEndDate         bool
	ClearWard            bool
	ClearMaxParticipants bool
	ClearContactPhone    bool
	ClearContactEmail    bool
}

type EventFilter struct {
	District  *string
	Panchayat *string
	Page      Page
}

type Registration struct {
	ID           uuid.UUID `db:"id" json:"id"`
	EventID      uuid.UUID `db:"event_id" json:"event_id"`
	Name         string    `db:"name" json:"name"`
	Phone        string    `db:"phone" json:"phone"`
	Email        *string   `db:"email" json:"email"`
	Ward         *string   `db:"ward" json:"ward"`
	NumAttendees int       `db:"num_attendees" json:"num_attendees"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
}

type RegistrationStats struct {
	Count          int `json:"count"`
	TotalAttendees int `json:"total_attendees"`
}
