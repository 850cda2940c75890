package scheduling_test

import (
	"testing"
	"time"

	"saintjolie-backend/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore serves a single salon's schedule from memory.
type fakeStore struct {
	regular        map[scheduling.Weekday][]scheduling.TimeRange
	special        *scheduling.SpecialDayInfo
	specialWindows []scheduling.TimeRange
}

func (f *fakeStore) RegularWindows(_ uuid.UUID, day scheduling.Weekday) ([]scheduling.TimeRange, error) {
	return f.regular[day], nil
}

func (f *fakeStore) SpecialDay(_ uuid.UUID, _ time.Time) (*scheduling.SpecialDayInfo, error) {
	return f.special, nil
}

func (f *fakeStore) SpecialWindows(_ uuid.UUID) ([]scheduling.TimeRange, error) {
	return f.specialWindows, nil
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.ParseInLocation("2006-01-02", s, time.Local)
	require.NoError(t, err)
	return date
}

func mins(h, m int) int { return h*60 + m }

func TestEffectiveWindows(t *testing.T) {
	monday := mustDate(t, "2025-06-02") // a Monday
	salonID := uuid.New()
	mondayWindows := []scheduling.TimeRange{
		{Start: mins(9, 0), End: mins(12, 0)},
		{Start: mins(14, 0), End: mins(18, 0)},
	}

	tests := []struct {
		name    string
		store   *fakeStore
		want    []scheduling.TimeRange
		wantErr error
	}{
		{
			name:  "regular windows when no override exists",
			store: &fakeStore{regular: map[scheduling.Weekday][]scheduling.TimeRange{scheduling.Monday: mondayWindows}},
			want:  mondayWindows,
		},
		{
			name:    "no regular windows for the weekday",
			store:   &fakeStore{regular: map[scheduling.Weekday][]scheduling.TimeRange{scheduling.Tuesday: mondayWindows}},
			wantErr: scheduling.ErrClosedDay,
		},
		{
			name: "closing override wins over regular windows",
			store: &fakeStore{
				regular: map[scheduling.Weekday][]scheduling.TimeRange{scheduling.Monday: mondayWindows},
				special: &scheduling.SpecialDayInfo{ID: uuid.New(), Closed: true},
			},
			wantErr: scheduling.ErrClosedDay,
		},
		{
			name: "open override replaces regular windows entirely",
			store: &fakeStore{
				regular:        map[scheduling.Weekday][]scheduling.TimeRange{scheduling.Monday: mondayWindows},
				special:        &scheduling.SpecialDayInfo{ID: uuid.New()},
				specialWindows: []scheduling.TimeRange{{Start: mins(10, 0), End: mins(13, 0)}},
			},
			want: []scheduling.TimeRange{{Start: mins(10, 0), End: mins(13, 0)}},
		},
		{
			name: "open override without windows is a full closure",
			store: &fakeStore{
				regular: map[scheduling.Weekday][]scheduling.TimeRange{scheduling.Monday: mondayWindows},
				special: &scheduling.SpecialDayInfo{ID: uuid.New()},
			},
			wantErr: scheduling.ErrClosedDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := scheduling.NewAvailabilityResolver(tt.store)
			windows, err := resolver.EffectiveWindows(salonID, monday)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, windows)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, windows)
		})
	}
}
