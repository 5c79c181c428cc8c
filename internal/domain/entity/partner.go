package entity

import (
	"time"

	"github.com/google/uuid"
)

// PartnerType identifies which onboarding track an applicant used
type PartnerType string

const (
	PartnerTypeFarmer       PartnerType = "farmer"
	PartnerTypeNutritionist PartnerType = "nutritionist"
	PartnerTypeRetailer     PartnerType = "retailer"
)

// Partner is a write-once partnership application. There is no update
// path: review happens outside this system.
type Partner struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email            string      `gorm:"type:varchar(255);not null;index" json:"email"`
	FullName         string      `gorm:"type:varchar(100);not null" json:"full_name"`
	Phone            string      `gorm:"type:varchar(20);not null" json:"phone"`
	PartnerType      PartnerType `gorm:"type:varchar(20);not null;index" json:"partner_type"`
	BusinessName     string      `gorm:"type:varchar(255)" json:"business_name,omitempty"`
	BusinessAddress  string      `gorm:"type:text" json:"business_address,omitempty"`
	ExperienceYears  int         `gorm:"not null;default:0" json:"experience_years"`
	Certifications   StringList  `gorm:"type:jsonb" json:"certifications,omitempty"`
	Specializations  StringList  `gorm:"type:jsonb" json:"specializations,omitempty"`
	CurrentSuppliers StringList  `gorm:"type:jsonb" json:"current_suppliers,omitempty"`
	// AdditionalInfo carries track-specific attributes (e.g. the farmer
	// form's farm details) serialized as an opaque JSON payload.
	AdditionalInfo string    `gorm:"type:text" json:"additional_info,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Partner) TableName() string {
	return "partners"
}
