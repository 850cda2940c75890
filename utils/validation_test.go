package utils_test

import (
	"testing"

	"saintjolie-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+33612345678", true},
		{"0612345678", true},
		{"+1 (555) 123-4567", true},
		{"123", false},
		{"not-a-number", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ValidatePhone(tt.phone))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	start, err := utils.ParseDate("2025-07-14")
	assert.NoError(t, err)
	end, err := utils.ParseDate("2025-07-16")
	assert.NoError(t, err)

	assert.Equal(t, 2, utils.DaysBetween(start, end))
	assert.Equal(t, 0, utils.DaysBetween(start, start))
}
