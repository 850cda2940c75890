package scheduling_test

import (
	"testing"
	"time"

	"saintjolie-backend/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	salonID := uuid.New()
	clientID := uuid.New()
	monday := mustDate(t, "2025-06-02")

	store := &fakeStore{regular: map[scheduling.Weekday][]scheduling.TimeRange{
		scheduling.Monday: {{Start: mins(9, 0), End: mins(18, 0)}},
	}}

	newPlanner := func() *scheduling.AppointmentPlanner {
		planner := scheduling.NewAppointmentPlanner(store)
		planner.Checker().Now = func() time.Time { return fixedNow }
		return planner
	}

	t.Run("end time is always start plus duration plus the fixed buffer", func(t *testing.T) {
		for _, duration := range []int{15, 30, 45, 90} {
			slot, err := newPlanner().Plan(scheduling.SalonInfo{ID: salonID, StaffCount: 1}, clientID, monday, mins(10, 0), duration, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, mins(10, 0)+duration+scheduling.BufferMinutes, slot.End)
		}
	})

	t.Run("propagates the checker's rejection", func(t *testing.T) {
		_, err := newPlanner().Plan(scheduling.SalonInfo{ID: salonID, StaffCount: 0}, clientID, monday, mins(10, 0), 30, nil, nil)
		assert.ErrorIs(t, err, scheduling.ErrNoStaffRegistered)
	})

	t.Run("exposes the effective windows for display", func(t *testing.T) {
		windows, err := newPlanner().EffectiveWindows(salonID, monday)
		require.NoError(t, err)
		assert.Equal(t, []scheduling.TimeRange{{Start: mins(9, 0), End: mins(18, 0)}}, windows)
	})
}
