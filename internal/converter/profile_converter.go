package converter

import (
	"arogyamix-server/internal/delivery/dto"
	"arogyamix-server/internal/domain/entity"
)

// ProfileToResponse converts a Profile entity to ProfileResponse DTO
func ProfileToResponse(profile *entity.Profile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.ProfileResponse{
		UserID:                profile.UserID,
		FullName:              profile.FullName,
		Phone:                 profile.Phone,
		HealthGoals:           profile.HealthGoals,
		DietaryPreferences:    profile.DietaryPreferences,
		MedicalConditions:     profile.MedicalConditions,
		EmergencyContactName:  profile.EmergencyContactName,
		EmergencyContactPhone: profile.EmergencyContactPhone,
		UpdatedAt:             profile.UpdatedAt,
	}

	if profile.DateOfBirth != nil {
		response.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}

	return response
}
