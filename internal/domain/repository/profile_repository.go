package repository

import (
	"arogyamix-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	// Upsert inserts the profile or replaces the existing row keyed by
	// user_id.
	Upsert(db *gorm.DB, profile *entity.Profile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error)
}
