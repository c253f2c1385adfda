package scheduler

import "github.com/Softileo/schedule-saas/internal/model"

// Variables is the pruned decision-variable layout for one scheduling run.
// It does not allocate a boolean per (employee, day, template) cell; instead
// it records, per employee and workable day, the list of template indices
// that are admissible there. A "works[e,d]" indicator is never materialized
// as its own cell either — it is read off the solution grid on demand
// (grid[e][d] != -1), per §4.4's derivation rule.
type Variables struct {
	Data *model.DataModel

	// Candidates[e][d] holds the admissible template indices for employee e
	// on day-of-month d. Indexed candidates[e] has length TotalDays+1; index
	// 0 is unused so day numbers can be used directly.
	Candidates [][][]int

	TotalVariables int
}

// BuildVariables prunes the (employee, day, template) space down to the
// triples admissible under §4.4: the employee must not be absent, the
// template must apply on that weekday, and if the employee has a non-empty
// permitted-template set, the template must be in it. Non-workable days
// carry no candidates.
func BuildVariables(dm *model.DataModel) *Variables {
	v := &Variables{
		Data:       dm,
		Candidates: make([][][]int, len(dm.Employees)),
	}

	for ei, emp := range dm.Employees {
		perDay := make([][]int, dm.Month.TotalDays+1)
		if !emp.Active {
			v.Candidates[ei] = perDay
			continue
		}
		for _, d := range dm.Month.WorkableDays() {
			if dm.EmployeeAbsentOn(emp.ID, d) {
				continue
			}
			var admissible []int
			for ti, t := range dm.Templates {
				if !dm.TemplateApplicableOn(t, d) {
					continue
				}
				if !emp.Permits(t.ID) {
					continue
				}
				admissible = append(admissible, ti)
				v.TotalVariables++
			}
			perDay[d] = admissible
		}
		v.Candidates[ei] = perDay
	}

	return v
}

// HasAnyCandidate reports whether employee ei has at least one admissible
// template on any workable day, i.e. whether the employee can be
// scheduled at all this month.
func (v *Variables) HasAnyCandidate(ei int) bool {
	for _, admissible := range v.Candidates[ei] {
		if len(admissible) > 0 {
			return true
		}
	}
	return false
}
