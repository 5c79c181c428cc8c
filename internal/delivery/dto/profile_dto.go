package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// UpdateProfileRequest carries the whole profile form. List fields arrive
// the way the form collects them: comma-separated free text.
type UpdateProfileRequest struct {
	FullName              string `json:"full_name" validate:"omitempty,max=100"`
	Phone                 string `json:"phone" validate:"omitempty,phone,max=20"`
	DateOfBirth           string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	HealthGoals           string `json:"health_goals" validate:"omitempty"`
	DietaryPreferences    string `json:"dietary_preferences" validate:"omitempty"`
	MedicalConditions     string `json:"medical_conditions" validate:"omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name" validate:"omitempty,max=100"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"omitempty,phone,max=20"`
}

// Response DTOs

type ProfileResponse struct {
	UserID                uuid.UUID `json:"user_id"`
	FullName              string    `json:"full_name,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	DateOfBirth           string    `json:"date_of_birth,omitempty"`
	HealthGoals           []string  `json:"health_goals,omitempty"`
	DietaryPreferences    []string  `json:"dietary_preferences,omitempty"`
	MedicalConditions     []string  `json:"medical_conditions,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	UpdatedAt             time.Time `json:"updated_at"`
}
