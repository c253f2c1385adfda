package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Softileo/schedule-saas/internal/model"
	"github.com/Softileo/schedule-saas/internal/timeutil"
)

// TestEvaluateObjective_SupervisorDayAbsencePenalty is a white-box
// complement to TestGenerate_SupervisorAbsencePenalty: it pins down the
// exact L2 contribution of H4's soft half (anySupervisor/dayHasSupervisor
// gating) so a regression there shows up even when it is too small to
// shift a full solve's outcome.
func TestEvaluateObjective_SupervisorDayAbsencePenalty(t *testing.T) {
	weekdays := map[timeutil.Weekday]struct{}{}
	for w := timeutil.Monday; w <= timeutil.Friday; w++ {
		weekdays[w] = struct{}{}
	}
	tpl := model.ShiftTemplate{ID: "day", Name: "day", StartMinutes: 8 * 60, EndMinutes: 16 * 60, MinEmployees: 1, Weekdays: weekdays}

	in := model.BuildInput{
		Year:      2026,
		Month:     time.February,
		Templates: []model.ShiftTemplate{tpl},
		Employees: []model.Employee{
			{ID: "sup", GivenName: "Ewa", FamilyName: "Kierownik", Type: model.EmploymentFull, Active: true, Supervisor: true},
			{ID: "reg", GivenName: "Marek", FamilyName: "Pracownik", Type: model.EmploymentFull, Active: true},
		},
		OpeningHours:    model.BuildOpeningHours(8*60, 16*60, nil),
		SchedulingRules: model.DefaultSchedulingRules(),
	}

	dm, err := model.Build(in)
	require.NoError(t, err)
	vars := BuildVariables(dm)

	supervisorIdx, regularIdx := -1, -1
	for i, e := range dm.Employees {
		if e.Supervisor {
			supervisorIdx = i
		} else {
			regularIdx = i
		}
	}
	require.NotEqual(t, -1, supervisorIdx)
	require.NotEqual(t, -1, regularIdx)

	ti := dm.TemplateIndex["day"]

	// the template only runs Mon-Fri, so only those workable days ever
	// count toward the supervisor gating - Saturdays have no active
	// template and are excluded from the expected penalty count.
	var templateDays []int
	for _, d := range dm.Month.WorkableDays() {
		w := dm.Month.WeekdayOf(d)
		if w >= timeutil.Monday && w <= timeutil.Friday {
			templateDays = append(templateDays, d)
		}
	}
	require.NotEmpty(t, templateDays)

	// g1: the supervisor covers every workday.
	g1 := newGrid(len(dm.Employees), dm.Month.TotalDays)
	for _, d := range templateDays {
		g1[supervisorIdx][d] = ti
	}
	b1 := evaluateObjective(dm, vars, g1)

	// g2: identical coverage, but the regular employee stands in every
	// day instead - nobody ever supervises.
	g2 := newGrid(len(dm.Employees), dm.Month.TotalDays)
	for _, d := range templateDays {
		g2[regularIdx][d] = ti
	}
	b2 := evaluateObjective(dm, vars, g2)

	assert.Zero(t, b1.L2, "a supervisor present every day incurs no supervisor-absence penalty")

	wantPerDay := int64(weightSupervisorDayAbsence + weightSupervisorMissingShift)
	assert.Equal(t, int64(len(templateDays))*wantPerDay, b2.L2,
		"every day with no supervisor present must cost both the day-absence and missing-shift L2 terms")
}
