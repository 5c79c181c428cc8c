package repository

import (
	"errors"

	"arogyamix-server/internal/domain/entity"
	domainRepo "arogyamix-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct{}

func NewProfileRepository() domainRepo.ProfileRepository {
	return &profileRepository{}
}

// Upsert relies on ON CONFLICT (user_id) DO UPDATE so a save always
// succeeds whether or not the user has a profile row yet.
func (r *profileRepository) Upsert(db *gorm.DB, profile *entity.Profile) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "phone", "date_of_birth",
			"health_goals", "dietary_preferences", "medical_conditions",
			"emergency_contact_name", "emergency_contact_phone",
			"updated_at",
		}),
	}).Create(profile).Error
}

func (r *profileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
