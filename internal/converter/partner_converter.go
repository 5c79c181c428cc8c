package converter

import (
	"arogyamix-server/internal/delivery/dto"
	"arogyamix-server/internal/domain/entity"
)

// PartnerToResponse converts a Partner entity to its response DTO
func PartnerToResponse(partner *entity.Partner) *dto.PartnerApplicationResponse {
	if partner == nil {
		return nil
	}

	return &dto.PartnerApplicationResponse{
		ID:          partner.ID,
		PartnerType: string(partner.PartnerType),
		CreatedAt:   partner.CreatedAt,
	}
}
