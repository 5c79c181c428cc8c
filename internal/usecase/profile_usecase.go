package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"arogyamix-server/internal/converter"
	"arogyamix-server/internal/delivery/dto"
	"arogyamix-server/internal/domain/entity"
	"arogyamix-server/internal/domain/repository"
	"arogyamix-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	maxListItems   = 10
	maxListItemLen = 100
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrDateOfBirthInPast = errors.New("date of birth must be 1900-01-01 or later")
	ErrDateOfBirthFuture = errors.New("date of birth cannot be in the future")
	ErrTooManyListItems  = fmt.Errorf("maximum %d items allowed", maxListItems)
	ErrListItemTooLong   = fmt.Errorf("each item must be at most %d characters", maxListItemLen)
)

// dobFloor is the earliest accepted date of birth.
var dobFloor = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	profileRepo  repository.ProfileRepository
	auditService service.AuditService
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		db:           db,
		log:          log,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.ProfileToResponse(profile), nil
}

// UpdateProfile validates the whole form and upserts the user's profile
// row. Nothing is written when any rule fails.
func (u *profileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	dob, err := ParseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	healthGoals, err := ParseListField(req.HealthGoals)
	if err != nil {
		return nil, err
	}
	dietaryPreferences, err := ParseListField(req.DietaryPreferences)
	if err != nil {
		return nil, err
	}
	medicalConditions, err := ParseListField(req.MedicalConditions)
	if err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		UserID:                userID,
		FullName:              strings.TrimSpace(req.FullName),
		Phone:                 strings.TrimSpace(req.Phone),
		DateOfBirth:           dob,
		HealthGoals:           healthGoals,
		DietaryPreferences:    dietaryPreferences,
		MedicalConditions:     medicalConditions,
		EmergencyContactName:  strings.TrimSpace(req.EmergencyContactName),
		EmergencyContactPhone: strings.TrimSpace(req.EmergencyContactPhone),
	}

	if err := u.profileRepo.Upsert(u.db.WithContext(ctx), profile); err != nil {
		u.log.Warnf("Failed to upsert profile for user %s: %+v", userID, err)
		return nil, err
	}

	u.auditService.Record(ctx, u.db, &userID, entity.AuditActionProfileUpdate, entity.JSON{
		"full_name": profile.FullName,
	})

	return converter.ProfileToResponse(profile), nil
}

// ParseDateOfBirth parses an optional YYYY-MM-DD date and bounds it to
// [1900-01-01, today]. An empty input yields nil.
func ParseDateOfBirth(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	dob, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if dob.Before(dobFloor) {
		return nil, ErrDateOfBirthInPast
	}
	if dob.After(time.Now()) {
		return nil, ErrDateOfBirthFuture
	}
	return &dob, nil
}

// ParseListField splits a comma-separated form field into trimmed items,
// dropping empties, and enforces the item count and length caps.
func ParseListField(raw string) (entity.StringList, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var items entity.StringList
	for _, part := range strings.Split(raw, ",") {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		if len(item) > maxListItemLen {
			return nil, ErrListItemTooLong
		}
		items = append(items, item)
	}

	if len(items) > maxListItems {
		return nil, ErrTooManyListItems
	}
	return items, nil
}
