package model

// SchedulingRules holds the tunable labor-code soft-rule thresholds.
// Defaults match spec §6: max 6 consecutive days, 11h daily rest, 48h
// weekly hours.
type SchedulingRules struct {
	MaxConsecutiveDays int
	MinDailyRestHours  int
	MaxWeeklyWorkHours int
}

// DefaultSchedulingRules returns the spec-mandated defaults.
func DefaultSchedulingRules() SchedulingRules {
	return SchedulingRules{
		MaxConsecutiveDays: 6,
		MinDailyRestHours:  11,
		MaxWeeklyWorkHours: 48,
	}
}
