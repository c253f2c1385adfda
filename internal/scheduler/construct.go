package scheduler

import (
	"math/rand"

	"github.com/Softileo/schedule-saas/internal/model"
)

// constructGreedy builds an initial feasible-as-possible solution: for every
// workable day, it tries to staff each applicable template up to its
// minimum, then runs a coverage-repair pass against the opening-hours
// partition (H5). Candidate order is shuffled per call so repeated solves
// of the same input do not converge on an identical schedule.
func constructGreedy(dm *model.DataModel, vars *Variables, rng *rand.Rand) grid {
	g := newGrid(len(dm.Employees), dm.Month.TotalDays)

	for _, d := range dm.Month.WorkableDays() {
		templateOrder := rng.Perm(len(dm.Templates))
		for _, ti := range templateOrder {
			t := dm.Templates[ti]
			if !dm.TemplateApplicableOn(t, d) || t.MinEmployees == 0 {
				continue
			}
			fillTemplate(dm, vars, g, rng, d, ti, t.MinEmployees)
		}
	}

	repairCoverage(dm, vars, g, rng)
	return g
}

// fillTemplate assigns up to `need` eligible employees to template ti on day
// d, trying employees furthest below their monthly target first so the
// greedy pass naturally favors under-served employees. Employees already
// at or above their target are not skipped; they are tried last.
func fillTemplate(dm *model.DataModel, vars *Variables, g grid, rng *rand.Rand, d, ti, need int) {
	filled := templateStaffingCount(g, ti, d)
	if filled >= need {
		return
	}

	order := eligibleEmployees(vars, g, d, ti)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	sortByRemainingNeed(dm, g, order)

	for _, ei := range order {
		if filled >= need {
			return
		}
		if !canAssign(dm, vars, g, ei, d, ti) {
			continue
		}
		g[ei][d] = ti
		filled++
	}
}

// eligibleEmployees lists employee indices whose candidate set for day d
// includes template ti and who are not already assigned that day.
func eligibleEmployees(vars *Variables, g grid, d, ti int) []int {
	var out []int
	for ei := range g {
		if g[ei][d] != -1 {
			continue
		}
		for _, cand := range vars.Candidates[ei][d] {
			if cand == ti {
				out = append(out, ei)
				break
			}
		}
	}
	return out
}

// sortByRemainingNeed performs a small insertion sort (the lists involved
// are short) placing employees furthest below their monthly target first.
func sortByRemainingNeed(dm *model.DataModel, g grid, order []int) {
	remaining := make(map[int]int, len(order))
	for _, ei := range order {
		target := employeeTarget(dm, dm.Employees[ei])
		worked := employeeWorkedMinutes(dm, g, ei)
		remaining[ei] = target - worked
	}
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 && remaining[order[j]] > remaining[order[j-1]] {
			order[j], order[j-1] = order[j-1], order[j]
			j--
		}
	}
}

// repairCoverage assigns any admissible (employee, template) pair that can
// close a genuine opening-hours coverage gap (H5). Gaps with no coverable
// template are configuration gaps and are left for diagnostics to surface.
func repairCoverage(dm *model.DataModel, vars *Variables, g grid, rng *rand.Rand) {
	for _, gap := range uncoveredSlots(dm, vars, g) {
		d, slotStart := gap[0], gap[1]
		w := dm.Month.WeekdayOf(d)
		slotEnd := slotStart + 30
		for _, s := range dm.OpeningHours.Slots(w) {
			if s[0] == slotStart {
				slotEnd = s[1]
				break
			}
		}

		assigned := false
		templateOrder := rng.Perm(len(dm.Templates))
		for _, ti := range templateOrder {
			t := dm.Templates[ti]
			if !t.Covers(slotStart, slotEnd) || !dm.TemplateApplicableOn(t, d) {
				continue
			}
			for _, ei := range eligibleEmployees(vars, g, d, ti) {
				if canAssign(dm, vars, g, ei, d, ti) {
					g[ei][d] = ti
					assigned = true
					break
				}
			}
			if assigned {
				break
			}
		}
	}
}
