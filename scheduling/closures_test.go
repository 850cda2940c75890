package scheduling_test

import (
	"testing"

	"saintjolie-backend/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupClosedDays(t *testing.T) {
	entry := func(date string, closed bool) scheduling.SpecialDayEntry {
		return scheduling.SpecialDayEntry{ID: uuid.New(), Date: mustDate(t, date), Closed: closed}
	}

	t.Run("empty input yields no groups", func(t *testing.T) {
		assert.Empty(t, scheduling.GroupClosedDays(nil))
	})

	t.Run("consecutive closed days collapse into one period", func(t *testing.T) {
		days := []scheduling.SpecialDayEntry{
			entry("2025-07-14", true),
			entry("2025-07-15", true),
			entry("2025-07-16", true),
		}
		groups := scheduling.GroupClosedDays(days)
		require.Len(t, groups, 1)
		assert.True(t, groups[0].Closed)
		assert.Equal(t, mustDate(t, "2025-07-14"), groups[0].DateStart)
		assert.Equal(t, mustDate(t, "2025-07-16"), groups[0].DateEnd)
		assert.Len(t, groups[0].IDs, 3)
	})

	t.Run("a gap starts a new closed period", func(t *testing.T) {
		days := []scheduling.SpecialDayEntry{
			entry("2025-07-14", true),
			entry("2025-07-16", true),
		}
		groups := scheduling.GroupClosedDays(days)
		require.Len(t, groups, 2)
		assert.Equal(t, groups[0].DateStart, groups[0].DateEnd)
		assert.Equal(t, groups[1].DateStart, groups[1].DateEnd)
	})

	t.Run("an open override splits a run and stays single", func(t *testing.T) {
		days := []scheduling.SpecialDayEntry{
			entry("2025-07-14", true),
			entry("2025-07-15", false),
			entry("2025-07-16", true),
			entry("2025-07-17", true),
		}
		groups := scheduling.GroupClosedDays(days)
		require.Len(t, groups, 3)

		assert.True(t, groups[0].Closed)
		assert.Equal(t, mustDate(t, "2025-07-14"), groups[0].DateEnd)

		assert.False(t, groups[1].Closed)
		assert.Equal(t, mustDate(t, "2025-07-15"), groups[1].DateStart)

		assert.True(t, groups[2].Closed)
		assert.Equal(t, mustDate(t, "2025-07-16"), groups[2].DateStart)
		assert.Equal(t, mustDate(t, "2025-07-17"), groups[2].DateEnd)
	})
}
