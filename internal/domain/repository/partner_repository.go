package repository

import (
	"arogyamix-server/internal/domain/entity"

	"gorm.io/gorm"
)

type PartnerRepository interface {
	Create(db *gorm.DB, partner *entity.Partner) error
}
