package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineDateTime(t *testing.T) {
	t.Run("valid combination", func(t *testing.T) {
		combined, err := CombineDateTime("2026-10-01", "14:30")
		require.NoError(t, err)
		assert.Equal(t, 2026, combined.Year())
		assert.Equal(t, time.October, combined.Month())
		assert.Equal(t, 14, combined.Hour())
		assert.Equal(t, 30, combined.Minute())
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := CombineDateTime("01-10-2026", "14:30")
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	})

	t.Run("bad time", func(t *testing.T) {
		_, err := CombineDateTime("2026-10-01", "2pm")
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	})
}

func TestValidateFuture(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateFuture(now.Add(time.Minute), now))
	assert.ErrorIs(t, ValidateFuture(now, now), ErrAppointmentInPast)
	assert.ErrorIs(t, ValidateFuture(now.Add(-time.Hour), now), ErrAppointmentInPast)
}
