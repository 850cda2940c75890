package scheduling_test

import (
	"testing"
	"time"

	"saintjolie-backend/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow pins the checker's clock well before the test dates so the
// in-the-past check only fires when a test wants it to.
var fixedNow = time.Date(2025, 1, 15, 9, 0, 0, 0, time.Local)

func newChecker(store scheduling.ScheduleStore) *scheduling.ConflictChecker {
	checker := scheduling.NewConflictChecker(scheduling.NewAvailabilityResolver(store))
	checker.Now = func() time.Time { return fixedNow }
	return checker
}

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d := mustDate(t, s)
	return &d
}

func TestValidatePlacement(t *testing.T) {
	salonID := uuid.New()
	otherSalonID := uuid.New()
	clientID := uuid.New()
	otherClientID := uuid.New()
	monday := mustDate(t, "2025-06-02")

	// Open Monday 09:00-12:00 only.
	store := &fakeStore{regular: map[scheduling.Weekday][]scheduling.TimeRange{
		scheduling.Monday: {{Start: mins(9, 0), End: mins(12, 0)}},
	}}

	salon := func(staff int) scheduling.SalonInfo {
		return scheduling.SalonInfo{ID: salonID, StaffCount: staff}
	}

	t.Run("accepts a fitting slot and derives the end time", func(t *testing.T) {
		slot, err := newChecker(store).ValidatePlacement(salon(1), clientID, monday, mins(9, 30), 30, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, mins(9, 30), slot.Start)
		assert.Equal(t, mins(10, 10), slot.End) // 30 min service + 10 min buffer
	})

	t.Run("rejects a date before the activity period", func(t *testing.T) {
		s := salon(1)
		s.ActivityStart = datePtr(t, "2025-06-10")
		_, err := newChecker(store).ValidatePlacement(s, clientID, monday, mins(9, 30), 30, nil, nil)
		assert.ErrorIs(t, err, scheduling.ErrOutsideActivityPeriod)
	})

	t.Run("rejects a date after the activity period", func(t *testing.T) {
		// Activity period [2025-06-01, 2025-08-31], booking on 2025-09-01.
		s := salon(1)
		s.ActivityStart = datePtr(t, "2025-06-01")
		s.ActivityEnd = datePtr(t, "2025-08-31")
		sept := mustDate(t, "2025-09-01") // also a Monday
		_, err := newChecker(store).ValidatePlacement(s, clientID, sept, mins(9, 30), 30, nil, nil)
		assert.ErrorIs(t, err, scheduling.ErrOutsideActivityPeriod)
	})

	t.Run("activity bounds compare by calendar day, not by instant", func(t *testing.T) {
		// Request dates are parsed at local midnight while stored bounds can
		// scan back from the database at UTC midnight. East of UTC the local
		// midnight instant precedes the UTC one, but the first and last day
		// of the period must still be accepted.
		east := time.FixedZone("UTC+2", 2*60*60)
		first := time.Date(2025, 6, 2, 0, 0, 0, 0, east) // the Monday, as a request date
		bound := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

		s := salon(1)
		s.ActivityStart = &bound
		s.ActivityEnd = &bound
		_, err := newChecker(store).ValidatePlacement(s, clientID, first, mins(9, 30), 30, nil, nil)
		assert.NoError(t, err)

		dayAfter := time.Date(2025, 6, 3, 0, 0, 0, 0, east)
		_, err = newChecker(store).ValidatePlacement(s, clientID, dayAfter, mins(9, 30), 30, nil, nil)
		assert.ErrorIs(t, err, scheduling.ErrOutsideActivityPeriod)
	})

	t.Run("rejects a start instant in the past", func(t *testing.T) {
		past := mustDate(t, "2024-12-30") // a Monday before fixedNow
		_, err := newChecker(store).ValidatePlacement(salon(1), clientID, past, mins(9, 30), 30, nil, nil)
		assert.ErrorIs(t, err, scheduling.ErrInThePast)
	})

	t.Run("rejects a slot not fully contained in an open window", func(t *testing.T) {
		// 11:30 + 30 min + buffer ends 12:10, past the 12:00 close.
		_, err := newChecker(store).ValidatePlacement(salon(1), clientID, monday, mins(11, 30), 30, nil, nil)
		assert.ErrorIs(t, err, scheduling.ErrOutsideOpeningHours)
	})

	t.Run("rejects any slot on a closed day as outside opening hours", func(t *testing.T) {
		closed := &fakeStore{
			regular: store.regular,
			special: &scheduling.SpecialDayInfo{ID: uuid.New(), Closed: true},
		}
		_, err := newChecker(closed).ValidatePlacement(salon(1), clientID, monday, mins(9, 30), 30, nil, nil)
		assert.ErrorIs(t, err, scheduling.ErrOutsideOpeningHours)
	})

	t.Run("rejects a client overlap even at a different salon", func(t *testing.T) {
		existing := []scheduling.Booking{{
			ID:       uuid.New(),
			ClientID: clientID,
			SalonID:  otherSalonID,
			Slot:     scheduling.TimeRange{Start: mins(9, 0), End: mins(9, 40)},
		}}
		_, err := newChecker(store).ValidatePlacement(salon(1), clientID, monday, mins(9, 30), 30, existing, nil)
		assert.ErrorIs(t, err, scheduling.ErrClientOverlap)
	})

	t.Run("ignores another client's overlap for the client check", func(t *testing.T) {
		existing := []scheduling.Booking{{
			ID:       uuid.New(),
			ClientID: otherClientID,
			SalonID:  salonID,
			Slot:     scheduling.TimeRange{Start: mins(9, 0), End: mins(9, 40)},
		}}
		_, err := newChecker(store).ValidatePlacement(salon(2), clientID, monday, mins(9, 30), 30, existing, nil)
		assert.NoError(t, err)
	})

	t.Run("rejects when the salon has no staff registered", func(t *testing.T) {
		_, err := newChecker(store).ValidatePlacement(salon(0), clientID, monday, mins(9, 30), 30, nil, nil)
		assert.ErrorIs(t, err, scheduling.ErrNoStaffRegistered)
	})

	t.Run("rejects when all staff are booked over the slot", func(t *testing.T) {
		existing := []scheduling.Booking{
			{ID: uuid.New(), ClientID: uuid.New(), SalonID: salonID, Slot: scheduling.TimeRange{Start: mins(9, 0), End: mins(10, 0)}},
			{ID: uuid.New(), ClientID: uuid.New(), SalonID: salonID, Slot: scheduling.TimeRange{Start: mins(9, 15), End: mins(10, 15)}},
		}
		_, err := newChecker(store).ValidatePlacement(salon(2), clientID, monday, mins(9, 30), 30, existing, nil)
		assert.ErrorIs(t, err, scheduling.ErrNoStaffAvailable)
	})

	t.Run("does not count bookings at other salons toward capacity", func(t *testing.T) {
		existing := []scheduling.Booking{
			{ID: uuid.New(), ClientID: uuid.New(), SalonID: otherSalonID, Slot: scheduling.TimeRange{Start: mins(9, 0), End: mins(10, 0)}},
		}
		_, err := newChecker(store).ValidatePlacement(salon(1), clientID, monday, mins(9, 30), 30, existing, nil)
		assert.NoError(t, err)
	})

	t.Run("does not count touching bookings toward capacity", func(t *testing.T) {
		existing := []scheduling.Booking{
			{ID: uuid.New(), ClientID: uuid.New(), SalonID: salonID, Slot: scheduling.TimeRange{Start: mins(9, 0), End: mins(9, 30)}},
		}
		_, err := newChecker(store).ValidatePlacement(salon(1), clientID, monday, mins(9, 30), 30, existing, nil)
		assert.NoError(t, err)
	})

	t.Run("editing an appointment never conflicts with itself", func(t *testing.T) {
		apptID := uuid.New()
		existing := []scheduling.Booking{{
			ID:       apptID,
			ClientID: clientID,
			SalonID:  salonID,
			Slot:     scheduling.TimeRange{Start: mins(9, 30), End: mins(10, 10)},
		}}

		// Without the exclusion the unchanged slot collides with itself.
		_, err := newChecker(store).ValidatePlacement(salon(1), clientID, monday, mins(9, 30), 30, existing, nil)
		assert.ErrorIs(t, err, scheduling.ErrClientOverlap)

		// With it, revalidating the unchanged appointment succeeds.
		slot, err := newChecker(store).ValidatePlacement(salon(1), clientID, monday, mins(9, 30), 30, existing, &apptID)
		require.NoError(t, err)
		assert.Equal(t, mins(10, 10), slot.End)
	})

	t.Run("activity period check fires before the opening-hours check", func(t *testing.T) {
		// The slot is also outside opening hours, but the period failure is
		// reported first.
		s := salon(1)
		s.ActivityStart = datePtr(t, "2025-06-10")
		_, err := newChecker(store).ValidatePlacement(s, clientID, monday, mins(13, 0), 30, nil, nil)
		assert.ErrorIs(t, err, scheduling.ErrOutsideActivityPeriod)
	})

	t.Run("client overlap is reported before staff capacity", func(t *testing.T) {
		existing := []scheduling.Booking{
			{ID: uuid.New(), ClientID: clientID, SalonID: salonID, Slot: scheduling.TimeRange{Start: mins(9, 0), End: mins(10, 0)}},
		}
		_, err := newChecker(store).ValidatePlacement(salon(0), clientID, monday, mins(9, 30), 30, existing, nil)
		assert.ErrorIs(t, err, scheduling.ErrClientOverlap)
	})
}
