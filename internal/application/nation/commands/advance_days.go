package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/nationsim-go/internal/application/mediator"
	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
)

// DayAdvancer simulates one day and notifies whoever observes the run
type DayAdvancer interface {
	Step(ctx context.Context) (int, []nation.DayReport, error)
}

// AdvanceDaysCommand simulates Days days immediately
type AdvanceDaysCommand struct {
	Days int
}

// DayResult is the outcome of one simulated day
type DayResult struct {
	Day     int
	Reports []nation.DayReport
}

type AdvanceDaysResponse struct {
	Day     int
	Results []DayResult
}

type AdvanceDaysHandler struct {
	advancer DayAdvancer
}

func NewAdvanceDaysHandler(advancer DayAdvancer) *AdvanceDaysHandler {
	return &AdvanceDaysHandler{advancer: advancer}
}

func (h *AdvanceDaysHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*AdvanceDaysCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AdvanceDaysCommand")
	}
	if cmd.Days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", cmd.Days)
	}

	resp := &AdvanceDaysResponse{Results: make([]DayResult, 0, cmd.Days)}
	for i := 0; i < cmd.Days; i++ {
		if err := ctx.Err(); err != nil {
			return resp, err
		}
		day, reports, err := h.advancer.Step(ctx)
		if err != nil {
			return resp, err
		}
		resp.Day = day
		resp.Results = append(resp.Results, DayResult{Day: day, Reports: reports})
	}
	return resp, nil
}
