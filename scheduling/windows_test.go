package scheduling_test

import (
	"testing"
	"time"

	"saintjolie-backend/scheduling"

	"github.com/stretchr/testify/assert"
)

func TestValidateWindow(t *testing.T) {
	existing := []scheduling.TimeRange{
		{Start: mins(9, 0), End: mins(12, 0)},
		{Start: mins(14, 0), End: mins(18, 0)},
	}

	tests := []struct {
		name      string
		candidate scheduling.TimeRange
		wantErr   error
	}{
		{name: "fits between existing windows", candidate: scheduling.TimeRange{Start: mins(12, 0), End: mins(14, 0)}},
		{name: "start must precede end", candidate: scheduling.TimeRange{Start: mins(10, 0), End: mins(10, 0)}, wantErr: scheduling.ErrInvalidWindow},
		{name: "inverted range", candidate: scheduling.TimeRange{Start: mins(11, 0), End: mins(10, 0)}, wantErr: scheduling.ErrInvalidWindow},
		{name: "overlaps the morning window", candidate: scheduling.TimeRange{Start: mins(11, 0), End: mins(13, 0)}, wantErr: scheduling.ErrOverlappingWindow},
		{name: "contained in the afternoon window", candidate: scheduling.TimeRange{Start: mins(15, 0), End: mins(16, 0)}, wantErr: scheduling.ErrOverlappingWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scheduling.ValidateWindow(tt.candidate, existing)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateSpecialDayDate(t *testing.T) {
	existing := []time.Time{
		mustDate(t, "2025-07-14"),
		mustDate(t, "2025-07-16"),
	}

	t.Run("a free date is accepted", func(t *testing.T) {
		assert.NoError(t, scheduling.ValidateSpecialDayDate(mustDate(t, "2025-07-15"), existing))
	})

	t.Run("a second override for the same date is rejected", func(t *testing.T) {
		err := scheduling.ValidateSpecialDayDate(mustDate(t, "2025-07-14"), existing)
		assert.ErrorIs(t, err, scheduling.ErrDuplicateSpecialDay)
	})

	t.Run("editing against the remaining dates is accepted", func(t *testing.T) {
		// The caller excludes the day being edited, so moving the 14th to a
		// free date only competes with the others.
		remaining := []time.Time{mustDate(t, "2025-07-16")}
		assert.NoError(t, scheduling.ValidateSpecialDayDate(mustDate(t, "2025-07-14"), remaining))
	})

	t.Run("dates in different locations still collide by day", func(t *testing.T) {
		utcStored := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
		err := scheduling.ValidateSpecialDayDate(mustDate(t, "2025-07-14"), []time.Time{utcStored})
		assert.ErrorIs(t, err, scheduling.ErrDuplicateSpecialDay)
	})

	t.Run("no existing overrides", func(t *testing.T) {
		assert.NoError(t, scheduling.ValidateSpecialDayDate(mustDate(t, "2025-07-14"), nil))
	})
}
