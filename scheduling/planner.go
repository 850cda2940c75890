package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentPlanner is the entry point for validating a proposed
// appointment, on creation as well as on edit. It only orchestrates the
// resolver and the checker; persistence stays with the caller, which must
// serialize the read-validate-write sequence per salon (the booking service
// does this with a row lock on the salon).
type AppointmentPlanner struct {
	resolver *AvailabilityResolver
	checker  *ConflictChecker
}

func NewAppointmentPlanner(store ScheduleStore) *AppointmentPlanner {
	resolver := NewAvailabilityResolver(store)
	return &AppointmentPlanner{
		resolver: resolver,
		checker:  NewConflictChecker(resolver),
	}
}

// Checker exposes the underlying conflict checker, mainly so tests can pin
// its clock.
func (p *AppointmentPlanner) Checker() *ConflictChecker {
	return p.checker
}

// EffectiveWindows is the resolver's result, re-exposed for display and for
// schedule-editing validation.
func (p *AppointmentPlanner) EffectiveWindows(salonID uuid.UUID, date time.Time) ([]TimeRange, error) {
	return p.resolver.EffectiveWindows(salonID, date)
}

// Plan validates the proposed appointment and returns its derived interval
// (end = start + duration + BufferMinutes) for the caller to persist. Edits
// pass the ID of the appointment being modified as excludeID so it is not
// checked against itself.
func (p *AppointmentPlanner) Plan(salon SalonInfo, clientID uuid.UUID, date time.Time, startClock, durationMinutes int, existing []Booking, excludeID *uuid.UUID) (TimeRange, error) {
	return p.checker.ValidatePlacement(salon, clientID, date, startClock, durationMinutes, existing, excludeID)
}
