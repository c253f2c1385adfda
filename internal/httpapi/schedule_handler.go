package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Softileo/schedule-saas/internal/scheduler"
)

// scheduleHandler serves the core's single operation over HTTP.
type scheduleHandler struct {
	defaultTimeLimit time.Duration
	maxTimeLimit     time.Duration
}

func newScheduleHandler(defaultTimeLimit, maxTimeLimit time.Duration) *scheduleHandler {
	return &scheduleHandler{defaultTimeLimit: defaultTimeLimit, maxTimeLimit: maxTimeLimit}
}

// Generate handles POST /api/v1/schedules: decode, translate, solve, respond.
func (h *scheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	buildInput, err := toBuildInput(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	timeLimit := h.defaultTimeLimit
	if req.SolverTimeLimit != nil {
		timeLimit = time.Duration(*req.SolverTimeLimit) * time.Second
	}
	if timeLimit > h.maxTimeLimit {
		timeLimit = h.maxTimeLimit
	}

	result := scheduler.Generate(buildInput, scheduler.Options{SolverTimeLimit: timeLimit})

	log.Info().
		Str("status", string(result.Status)).
		Int("year", req.Year).
		Int("month", req.Month).
		Msg("schedule generation finished")

	respondJSON(w, httpStatusFor(result), toResponse(result))
}
