package scheduling

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// BufferMinutes is the fixed gap added after every service before the next
// appointment can start. It is part of the persisted end time.
const BufferMinutes = 10

// ConflictChecker decides whether a candidate appointment can be placed
// without violating opening hours, client overlap or staff capacity.
type ConflictChecker struct {
	resolver *AvailabilityResolver

	// Now is the clock used for the in-the-past check; tests override it.
	Now func() time.Time
}

func NewConflictChecker(resolver *AvailabilityResolver) *ConflictChecker {
	return &ConflictChecker{resolver: resolver, Now: time.Now}
}

// ValidatePlacement runs the checks in a fixed order and stops at the first
// failure, so the caller always gets the most specific reason:
//
//  1. the date must fall inside the salon's activity period,
//  2. the start instant must not be in the past,
//  3. end = start + duration + BufferMinutes,
//  4. the interval must fit entirely inside one effective opening window,
//  5. the client must not already have an overlapping appointment that date
//     (at any salon),
//  6. the salon must have a staff member free for the whole interval.
//
// existing holds that date's bookings; excludeID ignores the appointment
// being edited so it never conflicts with itself. On success the derived
// interval is returned for the caller to persist.
func (c *ConflictChecker) ValidatePlacement(salon SalonInfo, clientID uuid.UUID, date time.Time, startClock, durationMinutes int, existing []Booking, excludeID *uuid.UUID) (TimeRange, error) {
	// Day granularity, not instants: the bounds and the date may carry
	// different locations and midnights.
	if salon.ActivityStart != nil && BeforeDay(date, *salon.ActivityStart) {
		return TimeRange{}, ErrOutsideActivityPeriod
	}
	if salon.ActivityEnd != nil && BeforeDay(*salon.ActivityEnd, date) {
		return TimeRange{}, ErrOutsideActivityPeriod
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), startClock/60, startClock%60, 0, 0, time.Local)
	if start.Before(c.Now()) {
		return TimeRange{}, ErrInThePast
	}

	candidate := TimeRange{Start: startClock, End: startClock + durationMinutes + BufferMinutes}

	windows, err := c.resolver.EffectiveWindows(salon.ID, date)
	if err != nil && !errors.Is(err, ErrClosedDay) {
		return TimeRange{}, err
	}
	contained := false
	for _, w := range windows {
		if w.Contains(candidate) {
			contained = true
			break
		}
	}
	if !contained {
		return TimeRange{}, ErrOutsideOpeningHours
	}

	for _, booking := range existing {
		if excludeID != nil && booking.ID == *excludeID {
			continue
		}
		if booking.ClientID == clientID && booking.Slot.Overlaps(candidate) {
			return TimeRange{}, ErrClientOverlap
		}
	}

	if salon.StaffCount <= 0 {
		return TimeRange{}, ErrNoStaffRegistered
	}
	busy := 0
	for _, booking := range existing {
		if excludeID != nil && booking.ID == *excludeID {
			continue
		}
		if booking.SalonID == salon.ID && booking.Slot.Overlaps(candidate) {
			busy++
		}
	}
	if busy >= salon.StaffCount {
		return TimeRange{}, ErrNoStaffAvailable
	}

	return candidate, nil
}
