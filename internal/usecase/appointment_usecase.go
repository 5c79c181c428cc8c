package usecase

import (
	"context"
	"errors"
	"time"

	"arogyamix-server/internal/converter"
	"arogyamix-server/internal/delivery/dto"
	"arogyamix-server/internal/domain/entity"
	"arogyamix-server/internal/domain/repository"
	"arogyamix-server/internal/service"
	"arogyamix-server/pkg/meet"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateTime        = errors.New("invalid appointment date or time")
	ErrAppointmentInPast      = errors.New("appointment must be scheduled in the future")
	ErrInvalidAppointmentType = errors.New("invalid appointment type")
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrAppointmentNotOwned    = errors.New("appointment does not belong to you")
	ErrInvalidMeetLink        = errors.New("the meeting link is not valid")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, userID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetMeetLink(ctx context.Context, userID, appointmentID uuid.UUID) (*dto.MeetLinkResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	meetLink        string
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	meetLink string,
) AppointmentUsecase {
	if meetLink == "" {
		meetLink = meet.DefaultLink
	}
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		meetLink:        meetLink,
	}
}

// Book validates the form, combines date and time into one timestamp,
// rejects past-dated bookings and persists the appointment with the
// static meeting link. No write happens on a validation failure.
func (u *appointmentUsecase) Book(ctx context.Context, userID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentType := entity.AppointmentType(req.AppointmentType)
	if !entity.ValidAppointmentType(appointmentType) {
		return nil, ErrInvalidAppointmentType
	}

	appointmentDate, err := CombineDateTime(req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, err
	}
	if err := ValidateFuture(appointmentDate, time.Now()); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		AppointmentDate: appointmentDate,
		AppointmentType: appointmentType,
		Status:          entity.AppointmentStatusScheduled,
		GoogleMeetLink:  u.meetLink,
		DurationMinutes: entity.DefaultDurationMinutes,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment for user %s: %+v", userID, err)
		return nil, err
	}

	u.auditService.Record(ctx, u.db, &userID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_id":   appointment.ID.String(),
		"appointment_type": string(appointmentType),
		"appointment_date": appointmentDate,
	})

	u.log.Infof("Appointment booked: id=%s, user=%s, type=%s", appointment.ID, userID, appointmentType)
	return converter.AppointmentToResponse(appointment), nil
}

// List returns the user's appointments ordered by date ascending, split
// into upcoming and past.
func (u *appointmentUsecase) List(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for user %s: %+v", userID, err)
		return nil, err
	}

	return converter.AppointmentsToListResponse(appointments, time.Now()), nil
}

// GetMeetLink returns the appointment's meeting link after the allow-list
// guard, so a tampered row can never direct the user off the meeting host.
func (u *appointmentUsecase) GetMeetLink(ctx context.Context, userID, appointmentID uuid.UUID) (*dto.MeetLinkResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.UserID != userID {
		return nil, ErrAppointmentNotOwned
	}

	if !meet.IsValidLink(appointment.GoogleMeetLink) {
		return nil, ErrInvalidMeetLink
	}

	return &dto.MeetLinkResponse{GoogleMeetLink: appointment.GoogleMeetLink}, nil
}

// CombineDateTime builds one timestamp from the form's separate date and
// time inputs. Unparseable combinations are rejected as invalid dates.
func CombineDateTime(date, clock string) (time.Time, error) {
	combined, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return combined, nil
}

// ValidateFuture rejects timestamps at or before now.
func ValidateFuture(t, now time.Time) error {
	if !t.After(now) {
		return ErrAppointmentInPast
	}
	return nil
}
