package scheduler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Softileo/schedule-saas/internal/model"
)

// DefaultSolverTimeLimit is applied when Options.SolverTimeLimit is zero.
const DefaultSolverTimeLimit = 300 * time.Second

// Options configures one Generate invocation.
type Options struct {
	// SolverTimeLimit bounds the local-search improvement phase. Zero uses
	// DefaultSolverTimeLimit.
	SolverTimeLimit time.Duration

	// Seed overrides the time-seeded RNG, for reproducible tests. Callers
	// outside tests should leave this nil.
	Seed *int64
}

// Generate runs the full Data -> Preflight -> Variables -> Hard -> Soft ->
// Solve -> Extract (or Diagnose) pipeline for one scheduling request and
// returns the single discriminated Result.
func Generate(in model.BuildInput, opts Options) *Result {
	dm, err := model.Build(in)
	if err != nil {
		return &Result{
			Status:    StatusError,
			ErrorKind: ErrorKindInvalidInput,
			Error:     err.Error(),
		}
	}

	pf := RunPreflight(dm)
	vars := BuildVariables(dm)

	if !pf.Sufficient {
		reasons, env := diagnose(dm, vars, pf)
		return &Result{
			Status:      StatusInsufficientCapacity,
			ErrorKind:   ErrorKindInsufficientCapacity,
			Error:       "projected demand exceeds available employee capacity",
			Reasons:     reasons,
			Suggestions: suggestions(),
			Details:     env,
		}
	}

	if vars.TotalVariables == 0 {
		reasons, env := diagnose(dm, vars, pf)
		return &Result{
			Status:      StatusInfeasible,
			ErrorKind:   ErrorKindInfeasible,
			Error:       "no employee is eligible for any template on any workable day this month",
			Reasons:     reasons,
			Suggestions: suggestions(),
			Details:     env,
		}
	}

	timeLimit := opts.SolverTimeLimit
	if timeLimit <= 0 {
		timeLimit = DefaultSolverTimeLimit
	}

	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	deadline := start.Add(timeLimit)

	initial := constructGreedy(dm, vars, rng)
	best, breakdown := localSearch(dm, vars, initial, rng, deadline)
	solveTime := time.Since(start).Seconds()

	if gaps := uncoveredSlots(dm, vars, best); len(gaps) > 0 {
		reasons, env := diagnose(dm, vars, pf)
		reasons = append(reasons, fmt.Sprintf("%d opening-hours slot(s) could not be covered by any eligible employee", len(gaps)))
		return &Result{
			Status:      StatusInfeasible,
			ErrorKind:   ErrorKindInfeasible,
			Error:       "could not guarantee minimum store coverage across all opening hours",
			Reasons:     reasons,
			Suggestions: suggestions(),
			Details:     env,
		}
	}

	shifts := extractAssignments(dm, best)
	optimal := breakdown.Total() == 0
	solverStatus := "FEASIBLE"
	if optimal {
		solverStatus = "OPTIMAL"
	}

	return &Result{
		Status: StatusSuccess,
		Shifts: shifts,
		Statistics: Statistics{
			SolverStatus:         solverStatus,
			SolveTimeSeconds:     solveTime,
			ObjectiveValue:       breakdown.Total(),
			QualityPercent:       qualityPercent(optimal, breakdown),
			TotalShiftsAssigned:  len(shifts),
			TotalVariables:       vars.TotalVariables,
			HardConstraintsCount: hardConstraintFamilies,
			SoftConstraintsCount: softConstraintFamilies,
			HoursByEmployee:      hoursByEmployee(dm, best),
		},
	}
}

func suggestions() []string {
	return append([]string(nil), defaultSuggestions...)
}
