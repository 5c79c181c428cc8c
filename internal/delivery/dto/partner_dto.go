package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// PartnerApplicationRequest is the generic onboarding form for
// nutritionists, retailers and farmers applying without the detailed
// farmer track.
type PartnerApplicationRequest struct {
	Email            string   `json:"email" validate:"required,email,max=255"`
	FullName         string   `json:"full_name" validate:"required,min=2,max=100"`
	Phone            string   `json:"phone" validate:"required,phone,min=10,max=20"`
	PartnerType      string   `json:"partner_type" validate:"required,oneof=farmer nutritionist retailer"`
	BusinessName     string   `json:"business_name" validate:"omitempty,max=255"`
	BusinessAddress  string   `json:"business_address" validate:"omitempty"`
	ExperienceYears  int      `json:"experience_years" validate:"gte=0,lte=50"`
	Certifications   []string `json:"certifications" validate:"omitempty,dive,max=100"`
	Specializations  []string `json:"specializations" validate:"omitempty,dive,max=100"`
	CurrentSuppliers []string `json:"current_suppliers" validate:"omitempty,dive,max=100"`
	AdditionalInfo   string   `json:"additional_info" validate:"omitempty,max=2000"`
}

// FarmerApplicationRequest is the detailed farmer onboarding form. The
// farm-specific fields are serialized into the partner record's
// additional_info payload.
type FarmerApplicationRequest struct {
	Email              string   `json:"email" validate:"required,email,max=255"`
	FullName           string   `json:"full_name" validate:"required,min=2,max=100"`
	Phone              string   `json:"phone" validate:"required,phone,min=10,max=20"`
	FarmName           string   `json:"farm_name" validate:"required,min=2,max=255"`
	FarmAddress        string   `json:"farm_address" validate:"required,min=5"`
	FarmSize           float64  `json:"farm_size" validate:"required,gt=0"`
	FarmSizeUnit       string   `json:"farm_size_unit" validate:"required,oneof=acres hectares"`
	ExperienceYears    int      `json:"experience_years" validate:"gte=0,lte=50"`
	CropTypes          []string `json:"crop_types" validate:"required,min=1,dive,max=100"`
	FarmingMethods     []string `json:"farming_methods" validate:"required,min=1,dive,max=100"`
	Certifications     []string `json:"certifications" validate:"omitempty,dive,max=100"`
	IrrigationSystem   string   `json:"irrigation_system" validate:"omitempty,max=100"`
	SoilType           string   `json:"soil_type" validate:"omitempty,max=100"`
	CurrentMarkets     []string `json:"current_markets" validate:"omitempty,dive,max=100"`
	MonthlyProduction  string   `json:"monthly_production" validate:"omitempty,max=100"`
	TransportationMode string   `json:"transportation_mode" validate:"omitempty,max=100"`
	StorageCapacity    string   `json:"storage_capacity" validate:"omitempty,max=100"`
	Challenges         string   `json:"challenges" validate:"omitempty,max=2000"`
	Expectations       string   `json:"expectations" validate:"omitempty,max=2000"`
	AdditionalInfo     string   `json:"additional_info" validate:"omitempty,max=2000"`
}

// Response DTOs

type PartnerApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	PartnerType string    `json:"partner_type"`
	CreatedAt   time.Time `json:"created_at"`
}
