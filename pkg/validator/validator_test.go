package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneForm struct {
	Phone string `validate:"required,phone,min=10"`
}

func TestPhoneRuleAcceptsTypicalFormats(t *testing.T) {
	v := NewValidator()

	for _, phone := range []string{"+91 98765 43210", "9876543210", "(011) 2345-6789"} {
		assert.NoError(t, v.Validate(&phoneForm{Phone: phone}), phone)
	}
}

func TestPhoneRuleRejectsLettersAndShortNumbers(t *testing.T) {
	v := NewValidator()

	assert.Error(t, v.Validate(&phoneForm{Phone: "not-a-phone!"}))
	assert.Error(t, v.Validate(&phoneForm{Phone: "12345"}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&phoneForm{Phone: "abc"})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Contains(t, fields, "Phone")
}
