package scheduling_test

import (
	"testing"
	"time"

	"saintjolie-backend/scheduling"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		date string
		want scheduling.Weekday
	}{
		{date: "2025-06-02", want: scheduling.Monday},
		{date: "2025-06-04", want: scheduling.Wednesday},
		{date: "2025-06-07", want: scheduling.Saturday},
		{date: "2025-06-08", want: scheduling.Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			date, err := time.Parse("2006-01-02", tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, scheduling.WeekdayOf(date))
		})
	}
}

func TestDayComparisons(t *testing.T) {
	east := time.FixedZone("UTC+2", 2*60*60)
	localMidnight := time.Date(2025, 6, 2, 0, 0, 0, 0, east)
	utcMidnight := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	// As instants localMidnight precedes utcMidnight; as days they are equal.
	assert.True(t, scheduling.SameDay(localMidnight, utcMidnight))
	assert.False(t, scheduling.BeforeDay(localMidnight, utcMidnight))
	assert.False(t, scheduling.BeforeDay(utcMidnight, localMidnight))

	nextDay := time.Date(2025, 6, 3, 0, 0, 0, 0, east)
	assert.False(t, scheduling.SameDay(utcMidnight, nextDay))
	assert.True(t, scheduling.BeforeDay(utcMidnight, nextDay))
	assert.False(t, scheduling.BeforeDay(nextDay, utcMidnight))
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "Monday", scheduling.Monday.String())
	assert.Equal(t, "Sunday", scheduling.Sunday.String())
	assert.Equal(t, "Unknown", scheduling.Weekday(7).String())
}
