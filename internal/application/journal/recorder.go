package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

// Recorder writes every simulated day of one run to a Repository
type Recorder struct {
	repo  Repository
	clock shared.Clock
	run   Run
}

// NewRecorder creates a recorder for run. If clock is nil, RealClock is used.
func NewRecorder(repo Repository, run Run, clock shared.Clock) *Recorder {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Recorder{repo: repo, clock: clock, run: run}
}

func (r *Recorder) RunID() string { return r.run.ID }

// Start registers the run
func (r *Recorder) Start(ctx context.Context) error {
	if r.run.StartedAt.IsZero() {
		r.run.StartedAt = r.clock.Now()
	}
	if err := r.repo.StartRun(ctx, r.run); err != nil {
		return fmt.Errorf("failed to start journal run: %w", err)
	}
	return nil
}

// ObserveDay appends one entry per nation report
func (r *Recorder) ObserveDay(ctx context.Context, day int, reports []nation.DayReport) error {
	now := r.clock.Now()
	entries := make([]Entry, 0, len(reports))
	for _, report := range reports {
		entries = append(entries, toEntry(r.run.ID, day, report, now))
	}
	if err := r.repo.AppendEntries(ctx, entries); err != nil {
		return fmt.Errorf("failed to journal day %d: %w", day, err)
	}
	return nil
}

// Finish stamps the run with the number of simulated days
func (r *Recorder) Finish(ctx context.Context, days int) error {
	return r.repo.FinishRun(ctx, r.run.ID, days, r.clock.Now())
}

func toEntry(runID string, day int, report nation.DayReport, at time.Time) Entry {
	stats := report.Stats
	entry := Entry{
		RunID:       runID,
		Day:         day,
		Nation:      report.Nation,
		FuelGained:  report.FuelGained,
		Fuel:        stats.Fuel,
		Manpower:    stats.Manpower,
		Civ:         stats.CivFactories,
		Mil:         stats.MilFactories,
		UsedMil:     stats.UsedMilFactories,
		QueueDepth:  stats.QueueDepth,
		BuildPoints: report.BuildPoints,
		ActiveFocus: stats.ActiveFocus,
		Guns:        stats.Equipment[shared.EquipmentGun],
		Artillery:   stats.Equipment[shared.EquipmentArtillery],
		AntiAir:     stats.Equipment[shared.EquipmentAntiAir],
		CAS:         stats.Equipment[shared.EquipmentCAS],
		RecordedAt:  at,
	}
	if c := report.CompletedConstruction; c != nil {
		entry.CompletedBuilding = c.Building.String()
		entry.CompletedBuildingProvince = c.ProvinceName
	}
	if f := report.CompletedFocus; f != nil {
		entry.CompletedFocus = f.Name
		entry.FocusProvince = f.ProvinceName
	}
	return entry
}
