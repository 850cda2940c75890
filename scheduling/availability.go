package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityResolver computes the effective opening windows of a salon for
// a given date. A special day always supersedes the regular weekly windows;
// the two are never merged for the same date.
type AvailabilityResolver struct {
	store ScheduleStore
}

func NewAvailabilityResolver(store ScheduleStore) *AvailabilityResolver {
	return &AvailabilityResolver{store: store}
}

// EffectiveWindows returns the ordered open intervals for the date, or
// ErrClosedDay when none apply: a closing override, an override that carries
// no windows, or a weekday with no regular windows defined.
func (r *AvailabilityResolver) EffectiveWindows(salonID uuid.UUID, date time.Time) ([]TimeRange, error) {
	special, err := r.store.SpecialDay(salonID, date)
	if err != nil {
		return nil, err
	}

	if special != nil {
		if special.Closed {
			return nil, ErrClosedDay
		}
		windows, err := r.store.SpecialWindows(special.ID)
		if err != nil {
			return nil, err
		}
		// An override marked open but without any window is, operationally,
		// a full closure for that date.
		if len(windows) == 0 {
			return nil, ErrClosedDay
		}
		return windows, nil
	}

	windows, err := r.store.RegularWindows(salonID, WeekdayOf(date))
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, ErrClosedDay
	}
	return windows, nil
}
