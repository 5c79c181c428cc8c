package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOfBirth(t *testing.T) {
	t.Run("empty input yields nil", func(t *testing.T) {
		dob, err := ParseDateOfBirth("  ")
		require.NoError(t, err)
		assert.Nil(t, dob)
	})

	t.Run("valid date", func(t *testing.T) {
		dob, err := ParseDateOfBirth("1990-06-15")
		require.NoError(t, err)
		require.NotNil(t, dob)
		assert.Equal(t, 1990, dob.Year())
	})

	t.Run("unparseable", func(t *testing.T) {
		_, err := ParseDateOfBirth("15/06/1990")
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})

	t.Run("before 1900", func(t *testing.T) {
		_, err := ParseDateOfBirth("1899-12-31")
		assert.ErrorIs(t, err, ErrDateOfBirthInPast)
	})

	t.Run("future date", func(t *testing.T) {
		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		_, err := ParseDateOfBirth(tomorrow)
		assert.ErrorIs(t, err, ErrDateOfBirthFuture)
	})
}

func TestParseListField(t *testing.T) {
	t.Run("splits and trims", func(t *testing.T) {
		items, err := ParseListField(" weight loss , better sleep ,, energy ")
		require.NoError(t, err)
		assert.Equal(t, []string{"weight loss", "better sleep", "energy"}, []string(items))
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		items, err := ParseListField("")
		require.NoError(t, err)
		assert.Nil(t, items)
	})

	t.Run("more than ten items rejected", func(t *testing.T) {
		raw := strings.Repeat("item,", 11)
		_, err := ParseListField(raw)
		assert.ErrorIs(t, err, ErrTooManyListItems)
		assert.EqualError(t, err, "maximum 10 items allowed")
	})

	t.Run("overlong item rejected", func(t *testing.T) {
		_, err := ParseListField(strings.Repeat("x", 101))
		assert.ErrorIs(t, err, ErrListItemTooLong)
	})
}
