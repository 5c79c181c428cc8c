package repository

import (
	"arogyamix-server/internal/domain/entity"
	domainRepo "arogyamix-server/internal/domain/repository"

	"gorm.io/gorm"
)

type partnerRepository struct{}

func NewPartnerRepository() domainRepo.PartnerRepository {
	return &partnerRepository{}
}

func (r *partnerRepository) Create(db *gorm.DB, partner *entity.Partner) error {
	return db.Create(partner).Error
}
