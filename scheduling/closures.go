package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// SpecialDayEntry is one override row, as listed for display.
type SpecialDayEntry struct {
	ID     uuid.UUID
	Date   time.Time
	Closed bool
}

// SpecialDayGroup is either a run of consecutive fully closed days collapsed
// into one period, or a single non-closed override day. For single days
// DateStart equals DateEnd.
type SpecialDayGroup struct {
	Closed    bool
	DateStart time.Time
	DateEnd   time.Time
	IDs       []uuid.UUID
}

// GroupClosedDays run-length-encodes a date-sorted list of special days so
// that holiday closures display as "closed from X to Y" instead of one line
// per day. This is purely a presentation helper; the resolver never uses it.
func GroupClosedDays(days []SpecialDayEntry) []SpecialDayGroup {
	var groups []SpecialDayGroup
	var current *SpecialDayGroup

	for _, day := range days {
		if day.Closed {
			if current != nil && day.Date.Equal(current.DateEnd.AddDate(0, 0, 1)) {
				current.DateEnd = day.Date
				current.IDs = append(current.IDs, day.ID)
				continue
			}
			if current != nil {
				groups = append(groups, *current)
			}
			current = &SpecialDayGroup{
				Closed:    true,
				DateStart: day.Date,
				DateEnd:   day.Date,
				IDs:       []uuid.UUID{day.ID},
			}
		} else {
			if current != nil {
				groups = append(groups, *current)
				current = nil
			}
			groups = append(groups, SpecialDayGroup{
				DateStart: day.Date,
				DateEnd:   day.Date,
				IDs:       []uuid.UUID{day.ID},
			})
		}
	}

	if current != nil {
		groups = append(groups, *current)
	}
	return groups
}
