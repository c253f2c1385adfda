package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Softileo/schedule-saas/internal/model"
	"github.com/Softileo/schedule-saas/internal/scheduler"
	"github.com/Softileo/schedule-saas/internal/timeutil"
)

func weekdayTemplate(id string, start, end string, min int, max *int) model.ShiftTemplate {
	s, err := timeutil.ParseStartClock(start)
	if err != nil {
		panic(err)
	}
	e, err := timeutil.ParseEndClock(end)
	if err != nil {
		panic(err)
	}
	weekdays := map[timeutil.Weekday]struct{}{}
	for w := timeutil.Monday; w <= timeutil.Friday; w++ {
		weekdays[w] = struct{}{}
	}
	return model.ShiftTemplate{
		ID: id, Name: id, StartMinutes: s, EndMinutes: e,
		MinEmployees: min, MaxEmployees: max, Weekdays: weekdays,
	}
}

func baseOpeningHours(open, close string) model.OpeningHours {
	o, err := timeutil.ParseStartClock(open)
	if err != nil {
		panic(err)
	}
	c, err := timeutil.ParseEndClock(close)
	if err != nil {
		panic(err)
	}
	return model.BuildOpeningHours(o, c, nil)
}

func seededOptions() scheduler.Options {
	seed := int64(42)
	return scheduler.Options{SolverTimeLimit: 2 * time.Second, Seed: &seed}
}

// S1: minimal feasible month, two full-time employees covering one
// Mon-Fri template with min=1, max=2.
func TestGenerate_MinimalFeasibleMonth(t *testing.T) {
	max := 2
	tpl := weekdayTemplate("day", "08:00", "16:00", 1, &max)

	in := model.BuildInput{
		Year:  2026,
		Month: time.February,
		Templates: []model.ShiftTemplate{tpl},
		Employees: []model.Employee{
			{ID: "e1", GivenName: "Anna", FamilyName: "Kowalska", Type: model.EmploymentFull, Active: true},
			{ID: "e2", GivenName: "Piotr", FamilyName: "Nowak", Type: model.EmploymentFull, Active: true},
		},
		OpeningHours:    baseOpeningHours("08:00", "16:00"),
		SchedulingRules: model.DefaultSchedulingRules(),
	}

	res := scheduler.Generate(in, seededOptions())
	require.Equal(t, scheduler.StatusSuccess, res.Status)

	mc := model.NewMonthContext(2026, time.February, nil, nil, false)
	for _, d := range mc.Weekdays {
		found := false
		for _, s := range res.Shifts {
			if s.Date.Equal(mc.Date(d)) {
				found = true
				assert.Equal(t, "day", s.TemplateID)
			}
		}
		assert.True(t, found, "weekday %d should have at least one assignment", d)
	}

	for _, hours := range res.Statistics.HoursByEmployee {
		assert.GreaterOrEqual(t, hours, 60.0)
		assert.LessOrEqual(t, hours, 100.0)
	}
}

// S2: night/day adjacency never produces an H3 overlap violation.
func TestGenerate_NightShiftNeverOverlapsFollowingDay(t *testing.T) {
	night := weekdayTemplate("night", "19:00", "07:00", 1, nil)
	morning := weekdayTemplate("morning", "06:00", "14:00", 1, nil)

	in := model.BuildInput{
		Year:      2026,
		Month:     time.February,
		Templates: []model.ShiftTemplate{night, morning},
		Employees: []model.Employee{
			{ID: "e1", GivenName: "Jan", FamilyName: "Wojcik", Type: model.EmploymentFull, Active: true,
				PermittedTemplates: map[string]struct{}{"night": {}, "morning": {}}},
		},
		OpeningHours:    baseOpeningHours("06:00", "20:00"),
		SchedulingRules: model.DefaultSchedulingRules(),
	}

	res := scheduler.Generate(in, seededOptions())
	require.Contains(t, []scheduler.Status{scheduler.StatusSuccess, scheduler.StatusInfeasible, scheduler.StatusInsufficientCapacity}, res.Status)
	if res.Status != scheduler.StatusSuccess {
		return
	}

	byDate := map[string]model.Assignment{}
	for _, s := range res.Shifts {
		byDate[s.Date.Format("2006-01-02")] = s
	}
	mc := model.NewMonthContext(2026, time.February, nil, nil, false)
	for _, d := range mc.AllDays() {
		if d == mc.TotalDays {
			continue
		}
		today, ok := byDate[mc.Date(d).Format("2006-01-02")]
		if !ok || today.TemplateID != "night" {
			continue
		}
		tomorrow, ok := byDate[mc.Date(d+1).Format("2006-01-02")]
		if !ok {
			continue
		}
		assert.NotEqual(t, "morning", tomorrow.TemplateID,
			"a night shift on day %d must never be followed by the overlapping morning template", d)
	}
}

// S3: ten demanding templates against five employees trips the
// INSUFFICIENT_CAPACITY preflight gate.
func TestGenerate_InsufficientCapacity(t *testing.T) {
	max := 5
	var templates []model.ShiftTemplate
	for i := 0; i < 10; i++ {
		id := string(rune('a' + i))
		templates = append(templates, weekdayTemplate(id, "08:00", "20:00", 3, &max))
	}

	var employees []model.Employee
	for i := 0; i < 5; i++ {
		employees = append(employees, model.Employee{
			ID: string(rune('1' + i)), GivenName: "E", FamilyName: string(rune('1' + i)),
			Type: model.EmploymentFull, Active: true,
		})
	}

	in := model.BuildInput{
		Year:            2026,
		Month:           time.February,
		Templates:       templates,
		Employees:       employees,
		OpeningHours:    baseOpeningHours("08:00", "20:00"),
		SchedulingRules: model.DefaultSchedulingRules(),
	}

	res := scheduler.Generate(in, seededOptions())
	require.Equal(t, scheduler.StatusInsufficientCapacity, res.Status)
	require.NotNil(t, res.Details)
	assert.Greater(t, res.Details.RequiredMinutes, 0)
	assert.Empty(t, res.Shifts)
}

// S4: an active trading Sunday gets coverage; every other Sunday stays empty.
func TestGenerate_TradingSundayActive(t *testing.T) {
	mc := model.NewMonthContext(2026, time.February, nil, nil, false)
	require.NotEmpty(t, mc.Sundays)
	activeSunday := mc.Sundays[0]

	weekdays := map[timeutil.Weekday]struct{}{}
	for w := timeutil.Monday; w <= timeutil.Sunday; w++ {
		weekdays[w] = struct{}{}
	}
	start, _ := timeutil.ParseStartClock("10:00")
	end, _ := timeutil.ParseEndClock("16:00")
	tpl := model.ShiftTemplate{ID: "sun", Name: "sun", StartMinutes: start, EndMinutes: end, MinEmployees: 1, Weekdays: weekdays}

	in := model.BuildInput{
		Year:                 2026,
		Month:                time.February,
		Templates:            []model.ShiftTemplate{tpl},
		EnableTradingSundays: true,
		TradingSundays: []model.TradingSunday{
			{Date: mc.Date(activeSunday), Active: true},
		},
		Employees: []model.Employee{
			{ID: "e1", GivenName: "Ola", FamilyName: "Zielinska", Type: model.EmploymentFull, Active: true},
			{ID: "e2", GivenName: "Tom", FamilyName: "Lis", Type: model.EmploymentFull, Active: true},
		},
		OpeningHours:    model.BuildOpeningHours(start, end, nil),
		SchedulingRules: model.DefaultSchedulingRules(),
	}

	res := scheduler.Generate(in, seededOptions())
	require.Equal(t, scheduler.StatusSuccess, res.Status)

	sundaysWithShifts := map[int]int{}
	for _, s := range res.Shifts {
		if timeutil.FromTime(s.Date) == timeutil.Sunday {
			sundaysWithShifts[s.Date.Day()]++
		}
	}
	assert.Greater(t, sundaysWithShifts[activeSunday], 0)
	for _, sun := range mc.Sundays {
		if sun != activeSunday {
			assert.Equal(t, 0, sundaysWithShifts[sun], "sunday %d is not an active trading sunday", sun)
		}
	}
}

// S5: a lone supervisor absent for 10 consecutive weekdays still produces
// a successful schedule; the missing supervision degrades quality rather
// than making the request infeasible.
func TestGenerate_SupervisorAbsencePenalty(t *testing.T) {
	max := 2
	tpl := weekdayTemplate("day", "08:00", "16:00", 1, &max)

	mc := model.NewMonthContext(2026, time.February, nil, nil, false)
	require.GreaterOrEqual(t, len(mc.Weekdays), 10)
	absenceStart := mc.Date(mc.Weekdays[0])
	absenceEnd := mc.Date(mc.Weekdays[9])

	in := model.BuildInput{
		Year:      2026,
		Month:     time.February,
		Templates: []model.ShiftTemplate{tpl},
		Employees: []model.Employee{
			{ID: "sup", GivenName: "Ewa", FamilyName: "Kierownik", Type: model.EmploymentFull, Active: true, Supervisor: true},
			{ID: "reg", GivenName: "Marek", FamilyName: "Pracownik", Type: model.EmploymentFull, Active: true},
		},
		Absences: []model.Absence{
			{EmployeeID: "sup", Start: absenceStart, End: absenceEnd, Reason: "sick leave"},
		},
		OpeningHours:    baseOpeningHours("08:00", "16:00"),
		SchedulingRules: model.DefaultSchedulingRules(),
	}

	res := scheduler.Generate(in, seededOptions())
	require.Equal(t, scheduler.StatusSuccess, res.Status)
	assert.LessOrEqual(t, res.Statistics.QualityPercent, 100.0)

	for _, d := range mc.Weekdays[:10] {
		for _, s := range res.Shifts {
			if s.Date.Equal(mc.Date(d)) {
				assert.NotEqual(t, "sup", s.EmployeeID, "the supervisor is absent on day %d", d)
			}
		}
	}
}

// S6: weekday absences scale the employee's target proportionally.
func TestGenerate_AbsenceScalesTarget(t *testing.T) {
	max := 1
	tpl := weekdayTemplate("day", "08:00", "16:00", 1, &max)

	mc := model.NewMonthContext(2026, time.February, nil, nil, false)
	weekdaysInMonth := len(mc.Weekdays)
	absentDays := 5
	absenceStart := mc.Date(mc.Weekdays[0])
	absenceEnd := mc.Date(mc.Weekdays[absentDays-1])

	in := model.BuildInput{
		Year:      2026,
		Month:     time.February,
		Templates: []model.ShiftTemplate{tpl},
		Employees: []model.Employee{
			{ID: "e1", GivenName: "Kasia", FamilyName: "Mazur", Type: model.EmploymentFull, Active: true},
		},
		Absences: []model.Absence{
			{EmployeeID: "e1", Start: absenceStart, End: absenceEnd, Reason: "vacation"},
		},
		OpeningHours:    baseOpeningHours("08:00", "16:00"),
		SchedulingRules: model.DefaultSchedulingRules(),
	}

	res := scheduler.Generate(in, seededOptions())
	require.Equal(t, scheduler.StatusSuccess, res.Status)

	scaledTargetHours := float64(weekdaysInMonth-absentDays) / float64(weekdaysInMonth) * float64(mc.MonthlyNormMinutes) / 60.0
	shiftLengthHours := tpl.Duration() / 60

	got := res.Statistics.HoursByEmployee["e1"]
	assert.InDelta(t, scaledTargetHours, got, float64(shiftLengthHours)+1)
}

// P1/P2/P3: eligibility, at-most-one-per-day and max-staffing invariants
// hold on every SUCCESS result, checked against a slightly richer input.
func TestGenerate_InvariantsHoldOnSuccess(t *testing.T) {
	max := 1
	tplA := weekdayTemplate("A", "08:00", "16:00", 1, &max)
	tplB := weekdayTemplate("B", "14:00", "22:00", 1, &max)

	in := model.BuildInput{
		Year:      2026,
		Month:     time.February,
		Templates: []model.ShiftTemplate{tplA, tplB},
		Employees: []model.Employee{
			{ID: "e1", GivenName: "A", FamilyName: "1", Type: model.EmploymentFull, Active: true, PermittedTemplates: map[string]struct{}{"A": {}}},
			{ID: "e2", GivenName: "B", FamilyName: "2", Type: model.EmploymentFull, Active: true},
			{ID: "e3", GivenName: "C", FamilyName: "3", Type: model.EmploymentHalf, Active: true},
		},
		OpeningHours:    baseOpeningHours("08:00", "22:00"),
		SchedulingRules: model.DefaultSchedulingRules(),
	}

	res := scheduler.Generate(in, seededOptions())
	require.Equal(t, scheduler.StatusSuccess, res.Status)

	seen := map[string]map[string]bool{}
	perTemplateDay := map[string]int{}
	for _, s := range res.Shifts {
		dateKey := s.Date.Format("2006-01-02")
		if seen[s.EmployeeID] == nil {
			seen[s.EmployeeID] = map[string]bool{}
		}
		assert.False(t, seen[s.EmployeeID][dateKey], "P2: employee %s has more than one shift on %s", s.EmployeeID, dateKey)
		seen[s.EmployeeID][dateKey] = true

		if s.EmployeeID == "e1" {
			assert.Equal(t, "A", s.TemplateID, "P1: e1 is only permitted template A")
		}

		perTemplateDay[s.TemplateID+"|"+dateKey]++
	}
	for key, count := range perTemplateDay {
		assert.LessOrEqual(t, count, 1, "P3: max_employees=1 exceeded for %s", key)
	}
}

// P10: output is sorted by (date, employee name).
func TestGenerate_OutputSortedByDateThenName(t *testing.T) {
	max := 3
	tpl := weekdayTemplate("day", "08:00", "16:00", 2, &max)

	in := model.BuildInput{
		Year:      2026,
		Month:     time.February,
		Templates: []model.ShiftTemplate{tpl},
		Employees: []model.Employee{
			{ID: "e1", GivenName: "Zoe", FamilyName: "Z", Type: model.EmploymentFull, Active: true},
			{ID: "e2", GivenName: "Amy", FamilyName: "A", Type: model.EmploymentFull, Active: true},
		},
		OpeningHours:    baseOpeningHours("08:00", "16:00"),
		SchedulingRules: model.DefaultSchedulingRules(),
	}

	res := scheduler.Generate(in, seededOptions())
	require.Equal(t, scheduler.StatusSuccess, res.Status)

	for i := 1; i < len(res.Shifts); i++ {
		prev, cur := res.Shifts[i-1], res.Shifts[i]
		if prev.Date.Equal(cur.Date) {
			assert.LessOrEqual(t, prev.EmployeeName, cur.EmployeeName)
		} else {
			assert.True(t, prev.Date.Before(cur.Date))
		}
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	res := scheduler.Generate(model.BuildInput{Year: 2026, Month: time.February}, seededOptions())
	assert.Equal(t, scheduler.StatusError, res.Status)
	assert.Equal(t, scheduler.ErrorKindInvalidInput, res.ErrorKind)
}
