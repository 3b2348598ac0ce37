package journal

import (
	"context"
	"time"
)

// Run is one recorded simulation run
type Run struct {
	ID         string
	Scenario   string
	Seed       uint64
	StartedAt  time.Time
	FinishedAt *time.Time
	Days       int
}

// Entry is one nation's state at the end of one simulated day
type Entry struct {
	RunID       string
	Day         int
	Nation      string
	FuelGained  int
	Fuel        int
	Manpower    int
	Civ         int
	Mil         int
	UsedMil     int
	QueueDepth  int
	BuildPoints float64
	ActiveFocus string
	Guns        int64
	Artillery   int64
	AntiAir     int64
	CAS         int64

	CompletedBuilding         string
	CompletedBuildingProvince string
	CompletedFocus            string
	FocusProvince             string

	RecordedAt time.Time
}

// Repository stores runs and their daily entries. It is append-only: entries
// are never read back into a running simulation.
type Repository interface {
	StartRun(ctx context.Context, run Run) error
	FinishRun(ctx context.Context, runID string, days int, finishedAt time.Time) error
	AppendEntries(ctx context.Context, entries []Entry) error
	ListRuns(ctx context.Context) ([]Run, error)
	// ListEntries returns entries ordered by day; an empty nation matches all
	ListEntries(ctx context.Context, runID, nation string) ([]Entry, error)
}
