package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"arogyamix-server/internal/converter"
	"arogyamix-server/internal/delivery/dto"
	"arogyamix-server/internal/domain/entity"
	"arogyamix-server/internal/domain/repository"
	"arogyamix-server/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrUnknownCropType      = errors.New("unknown crop type selected")
	ErrUnknownFarmingMethod = errors.New("unknown farming method selected")
)

// The farmer form offers fixed selections; anything outside them is
// rejected before the write.
var cropTypes = map[string]bool{
	"Rice": true, "Wheat": true, "Maize": true, "Barley": true, "Millet": true,
	"Tomatoes": true, "Potatoes": true, "Onions": true, "Carrots": true, "Cabbage": true,
	"Spinach": true, "Lettuce": true, "Broccoli": true, "Cauliflower": true, "Beans": true,
	"Mangoes": true, "Bananas": true, "Apples": true, "Oranges": true, "Grapes": true,
	"Cotton": true, "Sugarcane": true, "Tea": true, "Coffee": true, "Spices": true,
}

var farmingMethods = map[string]bool{
	"Organic Farming": true, "Conventional Farming": true, "Hydroponic Farming": true,
	"Precision Agriculture": true, "Sustainable Farming": true, "Integrated Pest Management": true,
	"Crop Rotation": true, "Permaculture": true, "Vertical Farming": true,
}

type PartnerUsecase interface {
	SubmitPartner(ctx context.Context, req *dto.PartnerApplicationRequest) (*dto.PartnerApplicationResponse, error)
	SubmitFarmer(ctx context.Context, req *dto.FarmerApplicationRequest) (*dto.PartnerApplicationResponse, error)
}

type partnerUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	partnerRepo  repository.PartnerRepository
	auditService service.AuditService
}

func NewPartnerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	partnerRepo repository.PartnerRepository,
	auditService service.AuditService,
) PartnerUsecase {
	return &partnerUsecase{
		db:           db,
		log:          log,
		partnerRepo:  partnerRepo,
		auditService: auditService,
	}
}

// SubmitPartner records a generic partnership application. Applications
// are write-once; review happens outside this system.
func (u *partnerUsecase) SubmitPartner(ctx context.Context, req *dto.PartnerApplicationRequest) (*dto.PartnerApplicationResponse, error) {
	partner := &entity.Partner{
		Email:            req.Email,
		FullName:         req.FullName,
		Phone:            req.Phone,
		PartnerType:      entity.PartnerType(req.PartnerType),
		BusinessName:     req.BusinessName,
		BusinessAddress:  req.BusinessAddress,
		ExperienceYears:  req.ExperienceYears,
		Certifications:   req.Certifications,
		Specializations:  req.Specializations,
		CurrentSuppliers: req.CurrentSuppliers,
		AdditionalInfo:   req.AdditionalInfo,
	}

	if err := u.partnerRepo.Create(u.db.WithContext(ctx), partner); err != nil {
		u.log.Warnf("Failed to create partner application: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, u.db, nil, entity.AuditActionPartnerApply, entity.JSON{
		"partner_id":   partner.ID.String(),
		"partner_type": req.PartnerType,
	})

	return converter.PartnerToResponse(partner), nil
}

// SubmitFarmer records a farmer application. Crop types and farming
// methods must come from the fixed selections; the farm-specific fields
// are serialized into the record's additional_info payload.
func (u *partnerUsecase) SubmitFarmer(ctx context.Context, req *dto.FarmerApplicationRequest) (*dto.PartnerApplicationResponse, error) {
	if err := ValidateFarmSelections(req.CropTypes, req.FarmingMethods); err != nil {
		return nil, err
	}

	additionalInfo, err := json.Marshal(map[string]interface{}{
		"farm_size":           req.FarmSize,
		"farm_size_unit":      req.FarmSizeUnit,
		"farming_methods":     req.FarmingMethods,
		"irrigation_system":   req.IrrigationSystem,
		"soil_type":           req.SoilType,
		"monthly_production":  req.MonthlyProduction,
		"transportation_mode": req.TransportationMode,
		"storage_capacity":    req.StorageCapacity,
		"challenges":          req.Challenges,
		"expectations":        req.Expectations,
		"additional_info":     req.AdditionalInfo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize farm details: %w", err)
	}

	partner := &entity.Partner{
		Email:            req.Email,
		FullName:         req.FullName,
		Phone:            req.Phone,
		PartnerType:      entity.PartnerTypeFarmer,
		BusinessName:     req.FarmName,
		BusinessAddress:  req.FarmAddress,
		ExperienceYears:  req.ExperienceYears,
		Certifications:   req.Certifications,
		Specializations:  req.CropTypes,
		CurrentSuppliers: req.CurrentMarkets,
		AdditionalInfo:   string(additionalInfo),
	}

	if err := u.partnerRepo.Create(u.db.WithContext(ctx), partner); err != nil {
		u.log.Warnf("Failed to create farmer application: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, u.db, nil, entity.AuditActionPartnerApply, entity.JSON{
		"partner_id":   partner.ID.String(),
		"partner_type": string(entity.PartnerTypeFarmer),
	})

	return converter.PartnerToResponse(partner), nil
}

// ValidateFarmSelections checks every selected crop type and farming
// method against the fixed form selections.
func ValidateFarmSelections(crops, methods []string) error {
	for _, crop := range crops {
		if !cropTypes[crop] {
			return ErrUnknownCropType
		}
	}
	for _, method := range methods {
		if !farmingMethods[method] {
			return ErrUnknownFarmingMethod
		}
	}
	return nil
}
