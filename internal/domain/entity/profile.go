package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Profile holds the health profile a user maintains about themselves.
// One row per user, upserted on user_id.
type Profile struct {
	UserID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	FullName              string     `gorm:"type:varchar(100)" json:"full_name,omitempty"`
	Phone                 string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	DateOfBirth           *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	HealthGoals           StringList `gorm:"type:jsonb" json:"health_goals,omitempty"`
	DietaryPreferences    StringList `gorm:"type:jsonb" json:"dietary_preferences,omitempty"`
	MedicalConditions     StringList `gorm:"type:jsonb" json:"medical_conditions,omitempty"`
	EmergencyContactName  string     `gorm:"type:varchar(100)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

// StringList stores a list of short free-text values as JSONB.
type StringList []string

// Value returns json value, implements driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan scans a JSONB value into the list, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	err := json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}
