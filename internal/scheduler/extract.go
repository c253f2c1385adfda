package scheduler

import (
	"sort"

	"github.com/Softileo/schedule-saas/internal/model"
)

// hardConstraintFamilies and softConstraintFamilies count the named
// constraint groups from §4.5/§4.6, reported in Statistics as a coarse
// model-size indicator rather than a per-cell count.
const (
	hardConstraintFamilies = 5  // H1..H5
	softConstraintFamilies = 10 // SC-Hours .. SC-ShiftBalance
)

// extractAssignments reads every assign cell with value set in g into
// Assignment records, sorted by (date, employee full name) per §4.8/P10.
func extractAssignments(dm *model.DataModel, g grid) []model.Assignment {
	var out []model.Assignment
	for ei, emp := range dm.Employees {
		for d := 1; d <= dm.Month.TotalDays; d++ {
			ti := g[ei][d]
			if ti == -1 {
				continue
			}
			t := dm.Templates[ti]
			color := t.Color
			if color == "" {
				color = emp.Color
			}
			out = append(out, model.Assignment{
				EmployeeID:      emp.ID,
				EmployeeName:    emp.FullName(),
				Date:            dm.Month.Date(d),
				TemplateID:      t.ID,
				TemplateName:    t.Name,
				StartMinutes:    t.StartMinutes,
				EndMinutes:      t.EndMinutes,
				DurationMinutes: t.Duration(),
				Color:           color,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].EmployeeName < out[j].EmployeeName
	})
	return out
}

// hoursByEmployee maps every employee id to their total worked hours
// (minutes / 60), including employees with zero assignments.
func hoursByEmployee(dm *model.DataModel, g grid) map[string]float64 {
	hours := make(map[string]float64, len(dm.Employees))
	for ei, emp := range dm.Employees {
		hours[emp.ID] = float64(employeeWorkedMinutes(dm, g, ei)) / 60.0
	}
	return hours
}
