package model

import "github.com/shopspring/decimal"

// EmploymentType is a closed sum type for the employee's contract-hours
// basis. Custom carries an explicit weekly-hours value instead of a
// fixed multiplier.
type EmploymentType string

const (
	EmploymentFull         EmploymentType = "full"
	EmploymentThreeQuarter EmploymentType = "three_quarter"
	EmploymentHalf         EmploymentType = "half"
	EmploymentOneThird     EmploymentType = "one_third"
	EmploymentCustom       EmploymentType = "custom"
)

// typeMultipliers holds the fixed fraction of the monthly norm each
// non-custom employment type targets.
var typeMultipliers = map[EmploymentType]decimal.Decimal{
	EmploymentFull:         decimal.NewFromInt(1),
	EmploymentThreeQuarter: decimal.NewFromFloat(0.75),
	EmploymentHalf:         decimal.NewFromFloat(0.5),
	EmploymentOneThird:     decimal.NewFromInt(1).Div(decimal.NewFromInt(3)),
}

// Multiplier returns the fraction of the monthly norm this employment
// type targets. For EmploymentCustom it derives the multiplier from
// customWeeklyHours against a 40-hour reference week; callers must pass
// the employee's CustomWeeklyHours for that case.
func (t EmploymentType) Multiplier(customWeeklyHours decimal.Decimal) decimal.Decimal {
	if t == EmploymentCustom {
		return customWeeklyHours.Div(decimal.NewFromInt(40))
	}
	if m, ok := typeMultipliers[t]; ok {
		return m
	}
	return decimal.Zero
}

// Employee is one normalized employee record for a single scheduling run.
type Employee struct {
	ID                 string
	GivenName          string
	FamilyName         string
	Type               EmploymentType
	CustomWeeklyHours  decimal.Decimal // only meaningful when Type == EmploymentCustom
	MonthlyCapHours    *decimal.Decimal
	Supervisor         bool
	Active             bool
	PermittedTemplates map[string]struct{} // empty/nil = all templates permitted
	Color              string

	// WeekdayAbsenceDays is derived per-run: count of absence days that
	// fall on a Mon-Fri weekday position within the scheduled month.
	WeekdayAbsenceDays int
}

// FullName joins given and family name for display and sort purposes.
func (e Employee) FullName() string {
	if e.GivenName == "" {
		return e.FamilyName
	}
	if e.FamilyName == "" {
		return e.GivenName
	}
	return e.GivenName + " " + e.FamilyName
}

// Permits reports whether the employee may be assigned to templateID.
// An empty PermittedTemplates set means every template is permitted.
func (e Employee) Permits(templateID string) bool {
	if len(e.PermittedTemplates) == 0 {
		return true
	}
	_, ok := e.PermittedTemplates[templateID]
	return ok
}

// Multiplier returns the employee's employment-type multiplier.
func (e Employee) Multiplier() decimal.Decimal {
	return e.Type.Multiplier(e.CustomWeeklyHours)
}
