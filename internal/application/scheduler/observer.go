package scheduler

import (
	"context"
	"log/slog"

	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
)

// DayObserver is notified after every simulated day
type DayObserver interface {
	ObserveDay(ctx context.Context, day int, reports []nation.DayReport) error
}

// ObserverFunc adapts a function to DayObserver
type ObserverFunc func(ctx context.Context, day int, reports []nation.DayReport) error

func (f ObserverFunc) ObserveDay(ctx context.Context, day int, reports []nation.DayReport) error {
	return f(ctx, day, reports)
}

// LogReporter writes one line per nation per day, plus a line for every
// completed building or focus
type LogReporter struct {
	logger *slog.Logger
}

func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger}
}

func (r *LogReporter) ObserveDay(ctx context.Context, day int, reports []nation.DayReport) error {
	for _, report := range reports {
		r.logger.Info("day simulated",
			"day", day,
			"nation", report.Nation,
			"fuel", report.Stats.Fuel,
			"fuel_gained", report.FuelGained,
			"build_points", report.BuildPoints,
			"queue", report.Stats.QueueDepth,
			"focus", report.Stats.ActiveFocus,
		)

		if done := report.CompletedConstruction; done != nil {
			if done.Applied {
				r.logger.Info("construction completed",
					"day", day, "nation", report.Nation, "building", done.Building, "province", done.ProvinceName)
			} else {
				r.logger.Warn("construction completed for missing province",
					"day", day, "nation", report.Nation, "building", done.Building, "province_index", done.ProvinceIndex)
			}
		}
		if done := report.CompletedFocus; done != nil {
			r.logger.Info("focus completed",
				"day", day, "nation", report.Nation, "focus", done.Name, "effect", done.Effect, "province", done.ProvinceName)
		}
	}
	return nil
}
