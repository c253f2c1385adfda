package model

import "github.com/Softileo/schedule-saas/internal/timeutil"

// EmployeePreference is an optional soft-constraint input record for one
// employee: preferred/unavailable weekdays and a self-reported weekly
// hour cap.
type EmployeePreference struct {
	EmployeeID      string
	Preferred       map[timeutil.Weekday]struct{}
	Unavailable     map[timeutil.Weekday]struct{}
	MaxHoursPerWeek *int
	WillingWeekend  bool
	WillingHoliday  bool
}

// WantsAvoided reports whether the employee marked weekday w as
// unavailable in their preferences.
func (p EmployeePreference) WantsAvoided(w timeutil.Weekday) bool {
	_, ok := p.Unavailable[w]
	return ok
}
