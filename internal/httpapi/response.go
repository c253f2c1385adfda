package httpapi

import (
	"net/http"

	"github.com/Softileo/schedule-saas/internal/scheduler"
	"github.com/Softileo/schedule-saas/internal/timeutil"
)

type shiftResponseDTO struct {
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	Date            string `json:"date"`
	TemplateID      string `json:"template_id"`
	TemplateName    string `json:"template_name"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Color           string `json:"color"`
}

type statisticsResponseDTO struct {
	SolverStatus         string             `json:"solver_status"`
	SolveTimeSeconds     float64            `json:"solve_time_seconds"`
	ObjectiveValue       int64              `json:"objective_value"`
	QualityPercent       float64            `json:"quality_percent"`
	TotalShiftsAssigned  int                `json:"total_shifts_assigned"`
	TotalVariables       int                `json:"total_variables"`
	HardConstraintsCount int                `json:"hard_constraints"`
	SoftConstraintsCount int                `json:"soft_constraints"`
	HoursByEmployee      map[string]float64 `json:"hours_by_employee"`
}

type detailsResponseDTO struct {
	RequiredHours  float64 `json:"required_hours"`
	AvailableHours float64 `json:"available_hours"`
}

type generateScheduleResponse struct {
	Status      string                  `json:"status"`
	Shifts      []shiftResponseDTO      `json:"shifts,omitempty"`
	Statistics  *statisticsResponseDTO  `json:"statistics,omitempty"`
	Error       string                  `json:"error,omitempty"`
	Reasons     []string                `json:"reasons,omitempty"`
	Suggestions []string                `json:"suggestions,omitempty"`
	Details     *detailsResponseDTO     `json:"details,omitempty"`
}

// httpStatusFor maps the core's Result to an HTTP status code.
func httpStatusFor(res *scheduler.Result) int {
	switch res.Status {
	case scheduler.StatusSuccess:
		return http.StatusOK
	case scheduler.StatusInsufficientCapacity, scheduler.StatusInfeasible:
		return http.StatusUnprocessableEntity
	default: // StatusError
		if res.ErrorKind == scheduler.ErrorKindInvalidInput {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}

func toResponse(res *scheduler.Result) generateScheduleResponse {
	out := generateScheduleResponse{
		Status:      string(res.Status),
		Error:       res.Error,
		Reasons:     res.Reasons,
		Suggestions: res.Suggestions,
	}

	if res.Details != nil {
		out.Details = &detailsResponseDTO{
			RequiredHours:  float64(res.Details.RequiredMinutes) / 60.0,
			AvailableHours: float64(res.Details.AvailableMinutes) / 60.0,
		}
	}

	if res.Status != scheduler.StatusSuccess {
		return out
	}

	out.Shifts = make([]shiftResponseDTO, 0, len(res.Shifts))
	for _, s := range res.Shifts {
		out.Shifts = append(out.Shifts, shiftResponseDTO{
			EmployeeID:      s.EmployeeID,
			EmployeeName:    s.EmployeeName,
			Date:            s.Date.Format("2006-01-02"),
			TemplateID:      s.TemplateID,
			TemplateName:    s.TemplateName,
			StartTime:       timeutil.FormatClock(s.StartMinutes),
			EndTime:         timeutil.FormatClock(s.EndMinutes),
			DurationMinutes: s.DurationMinutes,
			Color:           s.Color,
		})
	}

	out.Statistics = &statisticsResponseDTO{
		SolverStatus:         res.Statistics.SolverStatus,
		SolveTimeSeconds:     res.Statistics.SolveTimeSeconds,
		ObjectiveValue:       res.Statistics.ObjectiveValue,
		QualityPercent:       res.Statistics.QualityPercent,
		TotalShiftsAssigned:  res.Statistics.TotalShiftsAssigned,
		TotalVariables:       res.Statistics.TotalVariables,
		HardConstraintsCount: res.Statistics.HardConstraintsCount,
		SoftConstraintsCount: res.Statistics.SoftConstraintsCount,
		HoursByEmployee:      res.Statistics.HoursByEmployee,
	}

	return out
}
