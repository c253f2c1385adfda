package scheduler

import "github.com/Softileo/schedule-saas/internal/model"

// grid[e][d] holds the template index assigned to employee e on day-of-month
// d, or -1 if the employee does not work that day. Representing the
// solution this way makes H1 (at most one shift per employee per day)
// structural rather than a constraint that must be separately enforced.
type grid [][]int

func newGrid(numEmployees, totalDays int) grid {
	g := make(grid, numEmployees)
	for e := range g {
		row := make([]int, totalDays+1)
		for d := range row {
			row[d] = -1
		}
		g[e] = row
	}
	return g
}

func (g grid) clone() grid {
	c := make(grid, len(g))
	for e, row := range g {
		c[e] = append([]int(nil), row...)
	}
	return c
}

// shiftEndAbs is the template's end clock time expressed as an offset from
// the midnight that begins its start day, continuing past 1440 for shifts
// that wrap into the next calendar day. A day template 08:00-16:00 has
// shiftEndAbs 960; a night template 19:00-07:00 has shiftEndAbs 1860.
func shiftEndAbs(t model.ShiftTemplate) int {
	return t.StartMinutes + t.Duration()
}

// restMinutes computes the rest gap between a shift on day d (template t1)
// and a shift on day d+1 (template t2), per §4.6's SC-Rest11 formula.
// Negative values indicate an overlap, which H3 forbids outright.
func restMinutes(t1, t2 model.ShiftTemplate) int {
	endAbs := shiftEndAbs(t1)
	if endAbs > 1440 {
		return t2.StartMinutes - (endAbs - 1440)
	}
	return (1440 - endAbs) + t2.StartMinutes
}

// violatesNightOverlap implements H3: a night shift t1 ending on day d+1 at
// clock time (shiftEndAbs(t1)-1440) forbids any template t2 on d+1 that
// starts strictly before that clock time.
func violatesNightOverlap(t1, t2 model.ShiftTemplate) bool {
	if !t1.IsNightShift() {
		return false
	}
	return restMinutes(t1, t2) < 0
}

// templateStaffingCount counts how many employees are assigned to template
// ti on day d in g.
func templateStaffingCount(g grid, ti, d int) int {
	n := 0
	for e := range g {
		if g[e][d] == ti {
			n++
		}
	}
	return n
}

// canAssign reports whether employee ei may be assigned template ti on day
// d in the current grid, checking every hard constraint except H1 (which
// the grid representation enforces structurally) and H5 (checked globally
// after construction, since it spans all employees at once).
func canAssign(dm *model.DataModel, vars *Variables, g grid, ei, d, ti int) bool {
	if g[ei][d] != -1 {
		return false
	}
	admissible := false
	for _, cand := range vars.Candidates[ei][d] {
		if cand == ti {
			admissible = true
			break
		}
	}
	if !admissible {
		return false
	}

	t := dm.Templates[ti]

	// H2: max staffing per template-day.
	if t.MaxEmployees != nil && templateStaffingCount(g, ti, d) >= *t.MaxEmployees {
		return false
	}

	// H4 hard half: at most one supervisor per (template, day).
	if dm.Employees[ei].Supervisor {
		for e := range g {
			if e != ei && g[e][d] == ti && dm.Employees[e].Supervisor {
				return false
			}
		}
	}

	// H3: night-shift non-overlap with the adjacent days.
	if d > 1 {
		if prevTi := g[ei][d-1]; prevTi != -1 {
			if violatesNightOverlap(dm.Templates[prevTi], t) {
				return false
			}
		}
	}
	if d < dm.Month.TotalDays {
		if nextTi := g[ei][d+1]; nextTi != -1 {
			if violatesNightOverlap(t, dm.Templates[nextTi]) {
				return false
			}
		}
	}

	return true
}

// openingSlotCovered reports whether at least one employee assigned in g on
// day d covers the half-open slot [slotStart, slotEnd).
func openingSlotCovered(dm *model.DataModel, g grid, d int, slotStart, slotEnd int) bool {
	for e := range g {
		ti := g[e][d]
		if ti == -1 {
			continue
		}
		if dm.Templates[ti].Covers(slotStart, slotEnd) {
			return true
		}
	}
	return false
}

// violatesCoverage reports whether grid g fails H5 on day d: some
// opening-hours slot that slotCoverable says could be covered has no
// covering assignment. Local search uses this to reject a clear or
// reassignment move that would drop the sole assignment covering a slot,
// since H5 is a hard constraint and a cell-clear is otherwise always legal.
func violatesCoverage(dm *model.DataModel, g grid, d int) bool {
	w := dm.Month.WeekdayOf(d)
	for _, slot := range dm.OpeningHours.Slots(w) {
		if !slotCoverable(dm, d, slot[0], slot[1]) {
			continue
		}
		if !openingSlotCovered(dm, g, d, slot[0], slot[1]) {
			return true
		}
	}
	return false
}

// uncoveredSlots returns every (day, slot) pair from the opening-hours
// partition that has no covering assignment in g. A slot that no admissible
// (employee, template) pair can cover that day is excluded, matching H5's
// carve-out.
func uncoveredSlots(dm *model.DataModel, vars *Variables, g grid) [][2]int {
	var gaps [][2]int
	for _, d := range dm.Month.WorkableDays() {
		w := dm.Month.WeekdayOf(d)
		for _, slot := range dm.OpeningHours.Slots(w) {
			if !slotCoverable(dm, d, slot[0], slot[1]) {
				continue
			}
			if !openingSlotCovered(dm, g, d, slot[0], slot[1]) {
				gaps = append(gaps, [2]int{d, slot[0]})
			}
		}
	}
	return gaps
}

// slotCoverable reports whether the slot could, in principle, be covered on
// day d: some template applicable on d covers it and at least one active,
// non-absent employee is permitted that template — independent of whether
// anyone is assigned.
func slotCoverable(dm *model.DataModel, d, slotStart, slotEnd int) bool {
	for _, t := range dm.Templates {
		if !dm.TemplateApplicableOn(t, d) || !t.Covers(slotStart, slotEnd) {
			continue
		}
		for _, emp := range dm.Employees {
			if emp.Active && !dm.EmployeeAbsentOn(emp.ID, d) && emp.Permits(t.ID) {
				return true
			}
		}
	}
	return false
}
