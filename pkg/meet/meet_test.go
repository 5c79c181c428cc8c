package meet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLink(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{"placeholder link", DefaultLink, true},
		{"meeting code path", "https://meet.google.com/abc-defg-hij", true},
		{"http is rejected", "http://meet.google.com/new", false},
		{"other host", "https://evil.com/meet.google.com", false},
		{"host suffix spoof", "https://meet.google.com.evil.com/new", false},
		{"empty", "", false},
		{"not a url", "://broken", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidLink(tt.url))
		})
	}
}
