package scheduling

import "time"

// ValidateWindow checks a new or edited window definition against the
// windows already defined for the same scope (one salon+weekday for regular
// windows, one special day for special windows). When editing, the caller
// leaves the window being edited out of existing.
func ValidateWindow(candidate TimeRange, existing []TimeRange) error {
	if candidate.Start >= candidate.End {
		return ErrInvalidWindow
	}
	for _, w := range existing {
		if w.Overlaps(candidate) {
			return ErrOverlappingWindow
		}
	}
	return nil
}

// ValidateSpecialDayDate checks a new or edited override date against the
// dates a salon has already overridden; a salon carries at most one override
// per calendar day. When editing, the caller leaves the day being edited out
// of existing. Dates are compared at day granularity, whatever their
// locations.
func ValidateSpecialDayDate(candidate time.Time, existing []time.Time) error {
	for _, d := range existing {
		if SameDay(d, candidate) {
			return ErrDuplicateSpecialDay
		}
	}
	return nil
}
