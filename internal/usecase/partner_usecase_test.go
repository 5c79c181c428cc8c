package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFarmSelections(t *testing.T) {
	t.Run("known selections pass", func(t *testing.T) {
		err := ValidateFarmSelections(
			[]string{"Millet", "Tomatoes"},
			[]string{"Organic Farming", "Crop Rotation"},
		)
		assert.NoError(t, err)
	})

	t.Run("unknown crop rejected", func(t *testing.T) {
		err := ValidateFarmSelections([]string{"Dragonfruit"}, []string{"Organic Farming"})
		assert.ErrorIs(t, err, ErrUnknownCropType)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		err := ValidateFarmSelections([]string{"Millet"}, []string{"Moon Phase"})
		assert.ErrorIs(t, err, ErrUnknownFarmingMethod)
	})

	t.Run("empty selections pass", func(t *testing.T) {
		assert.NoError(t, ValidateFarmSelections(nil, nil))
	})
}
