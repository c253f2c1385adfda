package httpapi

import (
	"encoding/json"
	"io"

	"github.com/Softileo/schedule-saas/internal/model"
	"github.com/Softileo/schedule-saas/internal/scheduler"
)

// DecodeBuildInput parses a GenerateScheduleRequest JSON payload from r and
// translates it into model.BuildInput. It is exported so other front ends
// (the CLI included) can reuse the HTTP surface's request translation
// without going through net/http.
func DecodeBuildInput(r io.Reader) (model.BuildInput, *int, error) {
	var req GenerateScheduleRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return model.BuildInput{}, nil, err
	}
	in, err := toBuildInput(req)
	return in, req.SolverTimeLimit, err
}

// EncodeResult renders a scheduler.Result as the same JSON shape the HTTP
// surface returns, for CLI JSON output.
func EncodeResult(res *scheduler.Result) any {
	return toResponse(res)
}
