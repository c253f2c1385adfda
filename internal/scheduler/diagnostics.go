package scheduler

import (
	"fmt"

	"github.com/Softileo/schedule-saas/internal/model"
)

// maxDiagnosticTemplates caps how many understaffed templates are listed
// by name in the reasons output, per §4.9's "list up to a small limit".
const maxDiagnosticTemplates = 5

// diagnose analyzes why a request could not be satisfied and produces the
// structured reasons list and envelope numbers attached to INFEASIBLE and
// INSUFFICIENT_CAPACITY results.
func diagnose(dm *model.DataModel, vars *Variables, pf PreflightResult) ([]string, *Envelope) {
	reasons := []string{
		fmt.Sprintf("required capacity is %d minutes against %d available minutes (%.1fx)",
			pf.DemandMinutes, pf.SupplyMinutes, ratio(pf.DemandMinutes, pf.SupplyMinutes)),
	}

	reasons = append(reasons, understaffedTemplateReasons(dm, vars)...)
	reasons = append(reasons, weeklyDemandReasons(dm)...)

	return reasons, &Envelope{
		RequiredMinutes:  pf.DemandMinutes,
		AvailableMinutes: pf.SupplyMinutes,
	}
}

func ratio(demand, supply int) float64 {
	if supply == 0 {
		if demand == 0 {
			return 0
		}
		return 1e9
	}
	return float64(demand) / float64(supply)
}

// understaffedTemplateReasons reports, per template, how many workable days
// have fewer eligible-and-present employees than the template's minimum.
func understaffedTemplateReasons(dm *model.DataModel, vars *Variables) []string {
	var out []string
	for ti, t := range dm.Templates {
		if t.MinEmployees == 0 {
			continue
		}
		shortDays := 0
		for _, d := range dm.Month.WorkableDays() {
			if !dm.TemplateApplicableOn(t, d) {
				continue
			}
			available := 0
			for ei := range dm.Employees {
				for _, cand := range vars.Candidates[ei][d] {
					if cand == ti {
						available++
						break
					}
				}
			}
			if available < t.MinEmployees {
				shortDays++
			}
		}
		if shortDays > 0 {
			out = append(out, fmt.Sprintf("template %q (min %d) is understaffed on %d workable day(s)",
				t.Name, t.MinEmployees, shortDays))
			if len(out) >= maxDiagnosticTemplates {
				break
			}
		}
	}
	return out
}

// weeklyDemandReasons flags 7-day blocks (see weeklyBlocks) where the
// staffing-minute demand across all applicable templates exceeds the
// weekly-hours ceiling summed over every active employee. Absences are not
// subtracted from that supply.
func weeklyDemandReasons(dm *model.DataModel) []string {
	var out []string
	for _, blk := range weeklyBlocks(dm.Month.TotalDays) {
		demand := 0
		for d := blk[0]; d <= blk[1]; d++ {
			if !dm.Month.WorkableDay(d) {
				continue
			}
			for _, t := range dm.Templates {
				if dm.TemplateApplicableOn(t, d) {
					demand += t.MinEmployees * t.Duration()
				}
			}
		}
		supply := 0
		for _, emp := range dm.Employees {
			if !emp.Active {
				continue
			}
			supply += dm.SchedulingRules.MaxWeeklyWorkHours * 60 // MaxWeeklyWorkHours ceiling as the per-employee weekly availability bound
		}
		if demand > supply {
			out = append(out, fmt.Sprintf("week of day %d: demand %d minutes exceeds cumulative employee weekly capacity %d minutes",
				blk[0], demand, supply))
		}
	}
	return out
}
