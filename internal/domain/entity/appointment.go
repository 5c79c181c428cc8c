package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentType classifies what kind of session the user booked
type AppointmentType string

const (
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeNutrition    AppointmentType = "nutrition"
	AppointmentTypeFitness      AppointmentType = "fitness"
	AppointmentTypeFollowUp     AppointmentType = "follow-up"
	AppointmentTypeEmergency    AppointmentType = "emergency"
)

// AppointmentStatus represents the lifecycle state of an appointment.
// Only "scheduled" is ever written by this service; the other states are
// set by back-office tooling and are read-only here.
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// DefaultDurationMinutes is assigned to every new booking.
const DefaultDurationMinutes = 30

// Appointment represents a consultation booked by a user
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string            `gorm:"type:varchar(200);not null" json:"title"`
	Description     string            `gorm:"type:text" json:"description,omitempty"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date"`
	AppointmentType AppointmentType   `gorm:"type:varchar(20);not null" json:"appointment_type"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	GoogleMeetLink  string            `gorm:"type:text" json:"google_meet_link,omitempty"`
	DurationMinutes int               `gorm:"not null;default:30" json:"duration_minutes"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// ValidAppointmentType reports whether t is one of the bookable types.
func ValidAppointmentType(t AppointmentType) bool {
	switch t {
	case AppointmentTypeConsultation, AppointmentTypeNutrition,
		AppointmentTypeFitness, AppointmentTypeFollowUp, AppointmentTypeEmergency:
		return true
	}
	return false
}

// IsUpcoming reports whether the appointment should be shown in the
// upcoming list: still scheduled and not yet elapsed at now. Completed,
// cancelled and rescheduled rows are past regardless of their timestamp.
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return a.Status == AppointmentStatusScheduled && a.AppointmentDate.After(now)
}
