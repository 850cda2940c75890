package scheduling_test

import (
	"testing"

	"saintjolie-backend/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "morning", input: "09:30", want: 9*60 + 30},
		{name: "midnight", input: "00:00", want: 0},
		{name: "last minute of the day", input: "23:59", want: 23*60 + 59},
		{name: "missing minutes", input: "09", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scheduling.ParseClock(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", scheduling.FormatClock(9*60+5))
	assert.Equal(t, "00:00", scheduling.FormatClock(0))
	assert.Equal(t, "23:59", scheduling.FormatClock(23*60+59))
}

func TestTimeRangeOverlaps(t *testing.T) {
	a := scheduling.TimeRange{Start: 9 * 60, End: 10 * 60}

	tests := []struct {
		name string
		b    scheduling.TimeRange
		want bool
	}{
		{name: "identical", b: scheduling.TimeRange{Start: 9 * 60, End: 10 * 60}, want: true},
		{name: "partial overlap", b: scheduling.TimeRange{Start: 9*60 + 30, End: 10*60 + 30}, want: true},
		{name: "contained", b: scheduling.TimeRange{Start: 9*60 + 15, End: 9*60 + 45}, want: true},
		{name: "touching at the end does not overlap", b: scheduling.TimeRange{Start: 10 * 60, End: 11 * 60}, want: false},
		{name: "touching at the start does not overlap", b: scheduling.TimeRange{Start: 8 * 60, End: 9 * 60}, want: false},
		{name: "disjoint", b: scheduling.TimeRange{Start: 14 * 60, End: 15 * 60}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			// The overlap test is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}

func TestTimeRangeContains(t *testing.T) {
	window := scheduling.TimeRange{Start: 9 * 60, End: 12 * 60}

	assert.True(t, window.Contains(scheduling.TimeRange{Start: 9 * 60, End: 12 * 60}))
	assert.True(t, window.Contains(scheduling.TimeRange{Start: 10 * 60, End: 11 * 60}))
	assert.False(t, window.Contains(scheduling.TimeRange{Start: 8*60 + 30, End: 10 * 60}))
	assert.False(t, window.Contains(scheduling.TimeRange{Start: 11*60 + 30, End: 12*60 + 10}))
}
