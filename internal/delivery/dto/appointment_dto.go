package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// BookAppointmentRequest takes date and time as the form collects them,
// two separate fields that are combined server-side.
type BookAppointmentRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description" validate:"omitempty,max=2000"`
	AppointmentDate string `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	AppointmentTime string `json:"appointment_time" validate:"required"` // Format: HH:MM
	AppointmentType string `json:"appointment_type" validate:"required,oneof=consultation nutrition fitness follow-up emergency"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentType string    `json:"appointment_type"`
	Status          string    `json:"status"`
	GoogleMeetLink  string    `json:"google_meet_link,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

// AppointmentListResponse splits the user's appointments into upcoming
// (future and still scheduled) and past (everything else).
type AppointmentListResponse struct {
	Upcoming []AppointmentResponse `json:"upcoming"`
	Past     []AppointmentResponse `json:"past"`
	Total    int                   `json:"total"`
}

type MeetLinkResponse struct {
	GoogleMeetLink string `json:"google_meet_link"`
}
