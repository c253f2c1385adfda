package scheduler

import (
	"github.com/Softileo/schedule-saas/internal/model"
	"github.com/Softileo/schedule-saas/internal/timeutil"
	"github.com/shopspring/decimal"
)

// employeeTarget computes target(e) per SC-Hours: a supplied monthly cap
// overrides the type-multiplier share of the monthly norm when present;
// either way the result is scaled down proportionally to weekday absence
// days.
func employeeTarget(dm *model.DataModel, emp model.Employee) int {
	var target int64
	if emp.MonthlyCapHours != nil {
		target = emp.MonthlyCapHours.Mul(decimal.NewFromInt(60)).IntPart()
	} else {
		base := emp.Multiplier().Mul(decimal.NewFromInt(int64(dm.Month.MonthlyNormMinutes)))
		target = base.IntPart()
	}

	weekdaysInMonth := len(dm.Month.Weekdays)
	if emp.WeekdayAbsenceDays > 0 && weekdaysInMonth > 0 {
		remaining := weekdaysInMonth - emp.WeekdayAbsenceDays
		if remaining < 0 {
			remaining = 0
		}
		target = target * int64(remaining) / int64(weekdaysInMonth)
	}
	return int(target)
}

// employeeWorkedMinutes sums the duration of every assignment employee ei
// holds across the month in grid g.
func employeeWorkedMinutes(dm *model.DataModel, g grid, ei int) int {
	total := 0
	for d := 1; d <= dm.Month.TotalDays; d++ {
		if ti := g[ei][d]; ti != -1 {
			total += dm.Templates[ti].Duration()
		}
	}
	return total
}

// weeklyBlocks partitions the month into non-overlapping 7-day calendar
// blocks starting at day 1; the final block may be short.
func weeklyBlocks(totalDays int) [][2]int {
	var blocks [][2]int
	for start := 1; start <= totalDays; start += 7 {
		end := start + 6
		if end > totalDays {
			end = totalDays
		}
		blocks = append(blocks, [2]int{start, end})
	}
	return blocks
}

// slidingWindows returns every 7-day sliding window [d, d+6] that fits
// within the month.
func slidingWindows(totalDays int) [][2]int {
	var windows [][2]int
	for start := 1; start+6 <= totalDays; start++ {
		windows = append(windows, [2]int{start, start + 6})
	}
	return windows
}

func works(g grid, ei, d int) bool {
	return g[ei][d] != -1
}

// evaluateObjective computes the full hierarchical penalty breakdown for
// grid g, per §4.6.
func evaluateObjective(dm *model.DataModel, vars *Variables, g grid) Breakdown {
	var b Breakdown

	anySupervisor := false
	for _, emp := range dm.Employees {
		if emp.Supervisor {
			anySupervisor = true
			break
		}
	}

	// SC-Hours (L1).
	for ei, emp := range dm.Employees {
		if !emp.Active {
			continue
		}
		target := employeeTarget(dm, emp)
		total := employeeWorkedMinutes(dm, g, ei)
		if under := target - total; under > 0 {
			b.L1 += int64(under) * weightHourUnder
		}
		if over := total - target; over > 0 {
			b.L1 += int64(over) * weightHourOver
		}
	}

	// SC-Coverage and SC-Daily-balance (L2 / L2.5), plus H4's soft half.
	for _, d := range dm.Month.WorkableDays() {
		activeTemplates := 0
		minCov, maxCov := -1, -1
		dayHasSupervisor := false

		for ti, t := range dm.Templates {
			if !dm.TemplateApplicableOn(t, d) {
				continue
			}
			activeTemplates++
			assigned := templateStaffingCount(g, ti, d)

			if t.MinEmployees >= 1 {
				if slack := t.MinEmployees - assigned; slack > 0 {
					b.L2 += int64(slack) * weightCoverageSlack
				}
			}

			if minCov == -1 || assigned < minCov {
				minCov = assigned
			}
			if assigned > maxCov {
				maxCov = assigned
			}

			if anySupervisor {
				templateHasSupervisor := false
				for e := range g {
					if g[e][d] == ti && dm.Employees[e].Supervisor {
						templateHasSupervisor = true
						dayHasSupervisor = true
						break
					}
				}
				if !templateHasSupervisor {
					b.L2 += weightSupervisorMissingShift
				}
			}
		}

		if activeTemplates >= 2 && minCov >= 0 {
			b.L2_5 += int64(maxCov-minCov) * weightDailyBalance
		}

		if anySupervisor && activeTemplates > 0 && !dayHasSupervisor {
			b.L2 += weightSupervisorDayAbsence
		}
	}

	// SC-Rest11 (L3).
	for ei := range dm.Employees {
		for d := 1; d < dm.Month.TotalDays; d++ {
			t1i, t2i := g[ei][d], g[ei][d+1]
			if t1i == -1 || t2i == -1 {
				continue
			}
			t1, t2 := dm.Templates[t1i], dm.Templates[t2i]
			rest := restMinutes(t1, t2)
			if rest >= 0 && rest < dm.SchedulingRules.MinDailyRestHours*60 {
				b.L3 += weightRest11
			}
		}
	}

	// SC-Consecutive: sliding 7-day window hinge at more than
	// MaxConsecutiveDays worked days.
	maxConsecutive := dm.SchedulingRules.MaxConsecutiveDays
	for ei := range dm.Employees {
		for _, win := range slidingWindows(dm.Month.TotalDays) {
			count := 0
			for d := win[0]; d <= win[1]; d++ {
				if works(g, ei, d) {
					count++
				}
			}
			if count > maxConsecutive {
				b.L3 += int64(count-maxConsecutive) * weightConsecutiveDays
			}
		}
	}

	// SC-WeeklyRest and SC-Weekly48h: calendar-week blocks.
	for ei := range dm.Employees {
		for _, blk := range weeklyBlocks(dm.Month.TotalDays) {
			count := 0
			minutes := 0
			for d := blk[0]; d <= blk[1]; d++ {
				if ti := g[ei][d]; ti != -1 {
					count++
					minutes += dm.Templates[ti].Duration()
				}
			}
			if count > 6 {
				b.L3 += int64(count-6) * weightWeeklyRest
			}
			if over := minutes - dm.SchedulingRules.MaxWeeklyWorkHours*60; over > 0 {
				b.L3 += int64(over) * weightWeekly48PerMinute
			}
		}
	}

	// SC-Preferences (L4).
	for ei, emp := range dm.Employees {
		pref, hasPref := dm.Preferences[emp.ID]
		for _, d := range dm.Month.WorkableDays() {
			if !works(g, ei, d) {
				continue
			}
			if hasPref && pref.WantsAvoided(dm.Month.WeekdayOf(d)) {
				b.L4 += weightAvoidedDay
			}
			if dm.Month.WeekdayOf(d) == timeutil.Sunday && dm.Month.IsActiveTradingSunday(d) {
				b.L4 += weightSundayWork
			}
		}
	}

	// SC-WeekendFairness (L4), overall and 10x among supervisors.
	weekendDays := append(append([]int(nil), dm.Month.Saturdays...), activeSundays(dm)...)
	if len(weekendDays) > 0 {
		b.L4 += weekendFairnessPenalty(dm, g, weekendDays, nil) * weightWeekendFairness
		b.L4 += weekendFairnessPenalty(dm, g, weekendDays, supervisorFilter) * weightWeekendFairnessSupervisor
	}

	// SC-ShiftBalance (L4).
	for ti, t := range dm.Templates {
		var counts []int
		for ei, emp := range dm.Employees {
			if !emp.Active || !emp.Permits(t.ID) {
				continue
			}
			sc := 0
			for d := 1; d <= dm.Month.TotalDays; d++ {
				if g[ei][d] == ti {
					sc++
				}
			}
			counts = append(counts, sc)
		}
		if len(counts) < 2 {
			continue
		}
		minC, maxC := counts[0], counts[0]
		for _, c := range counts {
			if c < minC {
				minC = c
			}
			if c > maxC {
				maxC = c
			}
		}
		if spread := maxC - minC - 1; spread > 0 {
			b.L4 += int64(spread) * weightShiftBalance
		}
	}

	return b
}

func activeSundays(dm *model.DataModel) []int {
	var days []int
	for _, d := range dm.Month.Sundays {
		if dm.Month.IsActiveTradingSunday(d) && dm.Month.WorkableDay(d) {
			days = append(days, d)
		}
	}
	return days
}

func supervisorFilter(emp model.Employee) bool {
	return emp.Supervisor
}

// weekendFairnessPenalty computes max(wk)-min(wk) of weekend-day work counts
// across the employees selected by filter (all active employees if nil).
func weekendFairnessPenalty(dm *model.DataModel, g grid, weekendDays []int, filter func(model.Employee) bool) int64 {
	var counts []int
	for ei, emp := range dm.Employees {
		if !emp.Active {
			continue
		}
		if filter != nil && !filter(emp) {
			continue
		}
		wk := 0
		for _, d := range weekendDays {
			if works(g, ei, d) {
				wk++
			}
		}
		counts = append(counts, wk)
	}
	if len(counts) < 2 {
		return 0
	}
	minC, maxC := counts[0], counts[0]
	for _, c := range counts {
		if c < minC {
			minC = c
		}
		if c > maxC {
			maxC = c
		}
	}
	return int64(maxC - minC)
}
