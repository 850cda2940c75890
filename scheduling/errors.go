package scheduling

import "errors"

// Booking and schedule-editing rejections. These are business-rule outcomes,
// not faults: callers match them with errors.Is and translate them into
// user-facing messages. None of them is retried.
var (
	ErrClosedDay             = errors.New("the salon is entirely closed on this date")
	ErrOutsideActivityPeriod = errors.New("the salon is not in its activity period on this date")
	ErrInThePast             = errors.New("an appointment cannot be scheduled in the past")
	ErrOutsideOpeningHours   = errors.New("the appointment is not fully within the salon's opening hours")
	ErrClientOverlap         = errors.New("the client already has an overlapping appointment")
	ErrNoStaffRegistered     = errors.New("the salon has no staff registered to take appointments")
	ErrNoStaffAvailable      = errors.New("all staff are already booked for this time slot")

	ErrInvalidWindow     = errors.New("the window's start time must be before its end time")
	ErrOverlappingWindow = errors.New("the window overlaps an existing one for the same day")

	ErrDuplicateSpecialDay = errors.New("a special day already exists for this salon and date")
)
