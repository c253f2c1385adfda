package model

import (
	"time"

	"github.com/Softileo/schedule-saas/internal/timeutil"
)

// BuildInput is the fully-parsed, typed form of one scheduling request:
// clock strings and dates already converted to minutes-from-midnight
// and time.Time by the caller (the HTTP/CLI adapter), ready for
// normalization and indexing.
type BuildInput struct {
	Year                 int
	Month                time.Month
	MonthlyNormMinutes   *int
	Employees            []Employee
	Templates            []ShiftTemplate
	Absences             []Absence
	Preferences          []EmployeePreference
	TradingSundays       []TradingSunday
	EnableTradingSundays bool
	OpeningHours         OpeningHours
	SchedulingRules      SchedulingRules
}

// DataModel owns every normalized input collection and index for the
// duration of one scheduling run: employees, templates, absence-day
// sets, opening hours, and the derived MonthContext.
type DataModel struct {
	Month           *MonthContext
	Employees       []Employee
	Templates       []ShiftTemplate
	Preferences     map[string]EmployeePreference
	OpeningHours    OpeningHours
	SchedulingRules SchedulingRules

	EmployeeIndex map[string]int
	TemplateIndex map[string]int

	absentDays map[string]map[int]struct{} // employeeID -> day-of-month
}

// Build normalizes and indexes one scheduling request. It returns a
// *ValidationError (spec's InvalidInput kind) for missing top-level
// fields, empty employee/template lists, or an out-of-range month/year.
func Build(in BuildInput) (*DataModel, error) {
	if in.Year < 1970 {
		return nil, invalid("year", "year must be >= 1970, got %d", in.Year)
	}
	if in.Month < time.January || in.Month > time.December {
		return nil, invalid("month", "month must be 1-12, got %d", int(in.Month))
	}
	if len(in.Employees) == 0 {
		return nil, invalid("employees", "at least one employee is required")
	}
	if len(in.Templates) == 0 {
		return nil, invalid("shift_templates", "at least one shift template is required")
	}
	for _, t := range in.Templates {
		if t.MinEmployees < 0 {
			return nil, invalid("shift_templates", "template %s has negative min_employees", t.ID)
		}
		if t.MaxEmployees != nil && *t.MaxEmployees < 0 {
			return nil, invalid("shift_templates", "template %s has negative max_employees", t.ID)
		}
		if t.Duration() <= 0 || t.Duration() > 1440 {
			return nil, invalid("shift_templates", "template %s has non-positive or oversized duration", t.ID)
		}
	}

	month := NewMonthContext(in.Year, in.Month, in.MonthlyNormMinutes, in.TradingSundays, in.EnableTradingSundays)

	dm := &DataModel{
		Month:           month,
		Templates:       in.Templates,
		Preferences:     make(map[string]EmployeePreference, len(in.Preferences)),
		OpeningHours:    in.OpeningHours,
		SchedulingRules: in.SchedulingRules,
		EmployeeIndex:   make(map[string]int, len(in.Employees)),
		TemplateIndex:   make(map[string]int, len(in.Templates)),
		absentDays:      make(map[string]map[int]struct{}),
	}

	for i, t := range in.Templates {
		dm.TemplateIndex[t.ID] = i
	}
	for _, p := range in.Preferences {
		dm.Preferences[p.EmployeeID] = p
	}

	// Build per-employee absence-day sets (restricted to the scheduled
	// month) before copying employees in, so WeekdayAbsenceDays can be
	// derived in the same pass.
	for _, a := range in.Absences {
		days := dm.absentDays[a.EmployeeID]
		if days == nil {
			days = make(map[int]struct{})
			dm.absentDays[a.EmployeeID] = days
		}
		for _, d := range a.DaysInMonth(in.Year, in.Month) {
			days[d.Day()] = struct{}{}
		}
	}

	employees := make([]Employee, len(in.Employees))
	copy(employees, in.Employees)
	for i := range employees {
		employees[i].WeekdayAbsenceDays = dm.countWeekdayAbsences(employees[i].ID)
		dm.EmployeeIndex[employees[i].ID] = i
	}
	dm.Employees = employees

	return dm, nil
}

func (dm *DataModel) countWeekdayAbsences(employeeID string) int {
	days := dm.absentDays[employeeID]
	if len(days) == 0 {
		return 0
	}
	count := 0
	for d := range days {
		if w := dm.Month.WeekdayOf(d); w != timeutil.Saturday && w != timeutil.Sunday {
			count++
		}
	}
	return count
}

// EmployeeAbsentOn reports whether employeeID is absent on day-of-month d.
func (dm *DataModel) EmployeeAbsentOn(employeeID string, d int) bool {
	days, ok := dm.absentDays[employeeID]
	if !ok {
		return false
	}
	_, absent := days[d]
	return absent
}

// TemplateApplicableOn reports whether template t applies on day-of-month d.
func (dm *DataModel) TemplateApplicableOn(t ShiftTemplate, d int) bool {
	return t.AppliesOn(dm.Month.WeekdayOf(d))
}

// Employee looks up an employee by id.
func (dm *DataModel) Employee(id string) (Employee, bool) {
	i, ok := dm.EmployeeIndex[id]
	if !ok {
		return Employee{}, false
	}
	return dm.Employees[i], true
}

// Template looks up a shift template by id.
func (dm *DataModel) Template(id string) (ShiftTemplate, bool) {
	i, ok := dm.TemplateIndex[id]
	if !ok {
		return ShiftTemplate{}, false
	}
	return dm.Templates[i], true
}
