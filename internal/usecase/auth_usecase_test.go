package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"all classes present", "Sufficient1", nil},
		{"missing uppercase", "lowercase1", ErrPasswordUppercase},
		{"missing lowercase", "UPPERCASE1", ErrPasswordLowercase},
		{"missing digit", "NoDigitsHere", ErrPasswordDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
