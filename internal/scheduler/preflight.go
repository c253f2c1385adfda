package scheduler

import (
	"github.com/Softileo/schedule-saas/internal/model"
	"github.com/shopspring/decimal"
)

// insufficientCapacityFactor is the advisory overshoot the demand envelope
// must clear before preflight rejects the request outright. The main solver
// still tolerates a marginally short supply via the coverage-slack term.
const insufficientCapacityFactor = 1.1

// PreflightResult is the structural capacity envelope computed before the
// model is built.
type PreflightResult struct {
	DemandMinutes  int
	SupplyMinutes  int
	Sufficient     bool
}

// RunPreflight computes the demand and supply envelopes from §4.3 and
// reports whether the request clears the advisory capacity gate.
func RunPreflight(dm *model.DataModel) PreflightResult {
	demand := 0
	for _, d := range dm.Month.WorkableDays() {
		for _, t := range dm.Templates {
			if !dm.TemplateApplicableOn(t, d) {
				continue
			}
			demand += t.MinEmployees * t.Duration()
		}
	}

	supply := 0
	for _, emp := range dm.Employees {
		if !emp.Active {
			continue
		}
		target := emp.Multiplier().Mul(decimal.NewFromInt(int64(dm.Month.MonthlyNormMinutes)))
		absenceMinutes := decimal.NewFromInt(int64(emp.WeekdayAbsenceDays) * 8 * 60)
		avail := target.Sub(absenceMinutes)
		if avail.IsNegative() {
			continue
		}
		supply += int(avail.IntPart())
	}

	return PreflightResult{
		DemandMinutes: demand,
		SupplyMinutes: supply,
		Sufficient:    float64(demand) <= insufficientCapacityFactor*float64(supply),
	}
}
