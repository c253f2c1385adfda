// Package scheduler implements the constraint-programming-style monthly
// shift scheduler: feasibility preflight, decision-variable pruning, hard
// constraint enforcement, a hierarchical soft objective, a hand-written
// search driver, solution extraction and infeasibility diagnostics.
package scheduler

import "github.com/Softileo/schedule-saas/internal/model"

// Status is the outward result tag. It mirrors the CP solver statuses a
// real constraint solver would return, collapsed to the cases the core
// surfaces at its single API boundary.
type Status string

const (
	StatusSuccess              Status = "SUCCESS"
	StatusInfeasible           Status = "INFEASIBLE"
	StatusInsufficientCapacity Status = "INSUFFICIENT_CAPACITY"
	StatusError                Status = "ERROR"
)

// ErrorKind tags why a non-SUCCESS result occurred. It is not a Go error
// type; it is the discriminant callers branch on.
type ErrorKind string

const (
	ErrorKindNone                ErrorKind = ""
	ErrorKindInvalidInput        ErrorKind = "InvalidInput"
	ErrorKindInsufficientCapacity ErrorKind = "InsufficientCapacity"
	ErrorKindInfeasible          ErrorKind = "Infeasible"
	ErrorKindUnknown             ErrorKind = "Unknown"
	ErrorKindInternalError       ErrorKind = "InternalError"
)

// Statistics accompanies a SUCCESS result with solver telemetry and
// per-employee hour totals.
type Statistics struct {
	SolverStatus        string
	SolveTimeSeconds     float64
	ObjectiveValue       int64
	QualityPercent       float64
	TotalShiftsAssigned  int
	TotalVariables       int
	HardConstraintsCount int
	SoftConstraintsCount int
	HoursByEmployee      map[string]float64 // employee id -> hours (not minutes)
}

// Envelope is the structural capacity numbers attached to INSUFFICIENT_CAPACITY
// and INFEASIBLE results.
type Envelope struct {
	RequiredMinutes  int
	AvailableMinutes int
}

// Result is the single discriminated-union return value of Generate. Exactly
// one of the status-specific field groups is meaningful, selected by Status.
type Result struct {
	Status Status

	// SUCCESS
	Shifts     []model.Assignment
	Statistics Statistics

	// INFEASIBLE / INSUFFICIENT_CAPACITY / ERROR
	ErrorKind   ErrorKind
	Error       string
	Reasons     []string
	Suggestions []string
	Details     *Envelope
}

var defaultSuggestions = []string{
	"Add more employees or increase their available hours",
	"Reduce a shift template's minimum staffing requirement",
	"Widen opening hours or shift-template coverage windows",
	"Extend the solver time limit",
	"Check for overlapping employee absences on high-demand days",
}
