package scheduling

import "time"

// Weekday numbers the days Monday=0 through Sunday=6, matching how the
// salons define their weekly windows.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return weekdayNames[d]
}

// WeekdayOf resolves a calendar date to its Monday-first weekday.
// Go's time package counts Sunday as day zero.
func WeekdayOf(date time.Time) Weekday {
	return Weekday((int(date.Weekday()) + 6) % 7)
}

// SameDay reports whether the two instants fall on the same calendar day.
// Each side is read in its own location: request dates arrive at local
// midnight while dates scanned from the database may carry UTC midnight, and
// the two must still compare equal for the same day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BeforeDay reports whether a's calendar day precedes b's, under the same
// per-location reading as SameDay.
func BeforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
