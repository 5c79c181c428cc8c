package converter

import (
	"time"

	"arogyamix-server/internal/delivery/dto"
	"arogyamix-server/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		Title:           appointment.Title,
		Description:     appointment.Description,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentType: string(appointment.AppointmentType),
		Status:          string(appointment.Status),
		GoogleMeetLink:  appointment.GoogleMeetLink,
		DurationMinutes: appointment.DurationMinutes,
		CreatedAt:       appointment.CreatedAt,
	}
}

// AppointmentsToListResponse splits appointments into upcoming and past
// relative to now. Input order (appointment_date ascending) is preserved
// within each bucket.
func AppointmentsToListResponse(appointments []entity.Appointment, now time.Time) *dto.AppointmentListResponse {
	response := &dto.AppointmentListResponse{
		Upcoming: []dto.AppointmentResponse{},
		Past:     []dto.AppointmentResponse{},
		Total:    len(appointments),
	}

	for i := range appointments {
		appointment := &appointments[i]
		if appointment.IsUpcoming(now) {
			response.Upcoming = append(response.Upcoming, *AppointmentToResponse(appointment))
		} else {
			response.Past = append(response.Past, *AppointmentToResponse(appointment))
		}
	}

	return response
}
