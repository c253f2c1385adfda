package model

import "github.com/Softileo/schedule-saas/internal/timeutil"

// ShiftTemplate is a reusable shift definition: a start/end clock pair,
// staffing bounds, and the weekdays it applies to.
type ShiftTemplate struct {
	ID           string
	Name         string
	StartMinutes int // parsed with timeutil.ParseStartClock
	EndMinutes   int // parsed with timeutil.ParseEndClock
	MinEmployees int
	MaxEmployees *int
	Weekdays     map[timeutil.Weekday]struct{} // empty = every weekday
	Color        string
}

// Duration returns the template's shift length in minutes, applying
// night-shift wrap semantics.
func (t ShiftTemplate) Duration() int {
	return timeutil.Duration(t.StartMinutes, t.EndMinutes)
}

// IsNightShift reports whether the template wraps past midnight.
func (t ShiftTemplate) IsNightShift() bool {
	return timeutil.IsNightShift(t.StartMinutes, t.EndMinutes)
}

// AppliesOn reports whether the template can be scheduled on weekday w.
// An empty Weekdays set means the template applies to every day.
func (t ShiftTemplate) AppliesOn(w timeutil.Weekday) bool {
	if len(t.Weekdays) == 0 {
		return true
	}
	_, ok := t.Weekdays[w]
	return ok
}

// Covers reports whether the template's interval fully covers the
// half-open opening-hours slot [slotStart, slotEnd), per the minimum
// coverage rule in the hard-constraint builder.
func (t ShiftTemplate) Covers(slotStart, slotEnd int) bool {
	return t.StartMinutes <= slotStart && t.EndMinutes >= slotEnd
}
