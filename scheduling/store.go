package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// SpecialDayInfo is the resolver's view of a calendar override. When Closed
// is true the salon takes no appointments that date regardless of any
// windows; otherwise the day's windows come from SpecialWindows.
type SpecialDayInfo struct {
	ID     uuid.UUID
	Closed bool
}

// ScheduleStore is the read-only projection of a salon's schedule data that
// the availability resolver consumes. Window sequences are ordered by start
// time. A missing special day is reported as (nil, nil), not as an error.
type ScheduleStore interface {
	RegularWindows(salonID uuid.UUID, day Weekday) ([]TimeRange, error)
	SpecialDay(salonID uuid.UUID, date time.Time) (*SpecialDayInfo, error)
	SpecialWindows(specialDayID uuid.UUID) ([]TimeRange, error)
}

// SalonInfo is the snapshot of salon data the conflict checker needs.
type SalonInfo struct {
	ID            uuid.UUID
	StaffCount    int
	ActivityStart *time.Time
	ActivityEnd   *time.Time
}

// Booking is an existing appointment on the candidate's date. The caller
// passes all of the client's bookings for that date (any salon) together
// with all of the salon's bookings for that date; the checker filters by
// client and salon itself.
type Booking struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	SalonID  uuid.UUID
	Slot     TimeRange
}
