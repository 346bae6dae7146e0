package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"full mobile", "11987654321", "(11) 98765-4321"},
		{"area code only", "11", "(11"},
		{"partial after area code", "119", "(11) 9"},
		{"seven digits", "1198765", "(11) 98765"},
		{"eight digits", "11987654", "(11) 98765-4"},
		{"already formatted input", "(11) 98765-4321", "(11) 98765-4321"},
		{"mixed noise stripped", "+55 (11) 9.8765-4321", "(55) 11987-6543"},
		{"overlong truncated to eleven", "119876543210000", "(11) 98765-4321"},
		{"letters ignored", "abc", ""},
		{"single digit", "7", "(7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.input))
		})
	}
}
