package converter

import (
	"testing"
	"time"

	"arogyamix-server/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentsToListResponseSplit(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	appointments := []entity.Appointment{
		{
			ID:              uuid.New(),
			Title:           "Past consultation",
			AppointmentDate: now.Add(-24 * time.Hour),
			Status:          entity.AppointmentStatusScheduled,
		},
		{
			ID:              uuid.New(),
			Title:           "Cancelled future session",
			AppointmentDate: now.Add(24 * time.Hour),
			Status:          entity.AppointmentStatusCancelled,
		},
		{
			ID:              uuid.New(),
			Title:           "Upcoming nutrition review",
			AppointmentDate: now.Add(48 * time.Hour),
			Status:          entity.AppointmentStatusScheduled,
		},
	}

	response := AppointmentsToListResponse(appointments, now)

	assert.Equal(t, 3, response.Total)
	require.Len(t, response.Upcoming, 1)
	assert.Equal(t, "Upcoming nutrition review", response.Upcoming[0].Title)
	require.Len(t, response.Past, 2)
	assert.Equal(t, "Past consultation", response.Past[0].Title)
	assert.Equal(t, "Cancelled future session", response.Past[1].Title)
}

func TestAppointmentsToListResponseEmpty(t *testing.T) {
	response := AppointmentsToListResponse(nil, time.Now())

	assert.Equal(t, 0, response.Total)
	assert.NotNil(t, response.Upcoming)
	assert.NotNil(t, response.Past)
}
