package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/nationsim-go/internal/adapters/persistence"
	"github.com/andrescamacho/nationsim-go/internal/application/journal"
	"github.com/andrescamacho/nationsim-go/internal/application/scheduler"
	"github.com/andrescamacho/nationsim-go/internal/application/session"
	"github.com/andrescamacho/nationsim-go/internal/infrastructure/logging"
	"github.com/andrescamacho/nationsim-go/internal/infrastructure/scenario"
	"github.com/andrescamacho/nationsim-go/test/helpers"
)

// simulationContext is shared by the scheduler and journal steps, which
// both act on the same running world
type simulationContext struct {
	session   *session.Session
	scheduler *scheduler.Scheduler
	repo      *persistence.GormJournalRepository
	recorder  *journal.Recorder
	lastErr   error
}

var sharedSimulation = &simulationContext{}

func (sc *simulationContext) reset() error {
	sc.session = nil
	sc.scheduler = nil
	sc.recorder = nil
	sc.lastErr = nil
	sc.repo = persistence.NewGormJournalRepository(helpers.SharedTestDB)
	return helpers.TruncateAllTables()
}

func (sc *simulationContext) theDefaultScenarioBuiltWithSeed(seed int) error {
	def := scenario.Default()
	w, err := def.Build(uint64(seed))
	if err != nil {
		return err
	}
	sc.session = session.New(w, def.Name)
	sc.scheduler = scheduler.New(sc.session, scheduler.Options{Logger: logging.Discard()})
	return nil
}

func (sc *simulationContext) theSchedulerRunsDays(ctx context.Context, days int) error {
	if err := sc.scheduler.Run(ctx, days); err != nil {
		return err
	}
	if sc.recorder != nil {
		return sc.recorder.Finish(ctx, sc.scheduler.DaysRun())
	}
	return nil
}

func (sc *simulationContext) theSchedulerIsAskedToRunAgain(ctx context.Context) error {
	sc.lastErr = sc.scheduler.Run(ctx, 1)
	return nil
}

func (sc *simulationContext) theSchedulerIsPaused() error {
	sc.lastErr = sc.scheduler.Pause()
	return nil
}

func (sc *simulationContext) theWorldIsOnDay(day int) error {
	if got := sc.session.Day(); got != day {
		return fmt.Errorf("expected day %d, got %d", day, got)
	}
	return nil
}

func (sc *simulationContext) theSchedulerIs(status string) error {
	if got := sc.scheduler.Status(); string(got) != status {
		return fmt.Errorf("expected scheduler %s, got %s", status, got)
	}
	return nil
}

func (sc *simulationContext) theSchedulerRefuses(action, from string) error {
	var transition *scheduler.ErrInvalidTransition
	if !errors.As(sc.lastErr, &transition) {
		return fmt.Errorf("expected a transition error, got %v", sc.lastErr)
	}
	if transition.Action != action || string(transition.From) != from {
		return fmt.Errorf("expected refusal to %s from %s, got %s from %s", action, from, transition.Action, transition.From)
	}
	return nil
}

// Journal steps

func (sc *simulationContext) theJournalIsRecordingRun(ctx context.Context, runID string) error {
	sc.recorder = journal.NewRecorder(sc.repo, journal.Run{
		ID:       runID,
		Scenario: sc.session.Scenario(),
		Seed:     7,
	}, nil)
	if err := sc.recorder.Start(ctx); err != nil {
		return err
	}
	sc.scheduler.AddObserver("journal", sc.recorder)
	return nil
}

func (sc *simulationContext) theJournalHoldsEntriesForRun(ctx context.Context, expected int, runID string) error {
	entries, err := sc.repo.ListEntries(ctx, runID, "")
	if err != nil {
		return err
	}
	if len(entries) != expected {
		return fmt.Errorf("expected %d entries, got %d", expected, len(entries))
	}
	return nil
}

func (sc *simulationContext) theJournalHoldsEntriesForNation(ctx context.Context, expected int, nationName, runID string) error {
	entries, err := sc.repo.ListEntries(ctx, runID, nationName)
	if err != nil {
		return err
	}
	if len(entries) != expected {
		return fmt.Errorf("expected %d entries for %s, got %d", expected, nationName, len(entries))
	}
	for _, e := range entries {
		if e.Nation != nationName {
			return fmt.Errorf("unexpected entry for %s", e.Nation)
		}
	}
	return nil
}

func (sc *simulationContext) entryOn(ctx context.Context, nationName string, day int) (*journal.Entry, error) {
	entries, err := sc.repo.ListEntries(ctx, sc.recorder.RunID(), nationName)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].Day == day {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("no entry for %s on day %d", nationName, day)
}

func (sc *simulationContext) theEntryShowsGuns(ctx context.Context, nationName string, day int, guns int64) error {
	entry, err := sc.entryOn(ctx, nationName, day)
	if err != nil {
		return err
	}
	if entry.Guns != guns {
		return fmt.Errorf("expected %d guns, got %d", guns, entry.Guns)
	}
	return nil
}

func (sc *simulationContext) theEntryShowsArtillery(ctx context.Context, nationName string, day int, artillery int64) error {
	entry, err := sc.entryOn(ctx, nationName, day)
	if err != nil {
		return err
	}
	if entry.Artillery != artillery {
		return fmt.Errorf("expected %d artillery, got %d", artillery, entry.Artillery)
	}
	return nil
}

func (sc *simulationContext) runIsFinishedAfterDays(ctx context.Context, runID string, days int) error {
	runs, err := sc.repo.ListRuns(ctx)
	if err != nil {
		return err
	}
	for _, run := range runs {
		if run.ID != runID {
			continue
		}
		if run.FinishedAt == nil {
			return fmt.Errorf("run %s is not finished", runID)
		}
		if run.Days != days {
			return fmt.Errorf("expected %d days, got %d", days, run.Days)
		}
		return nil
	}
	return fmt.Errorf("run %s not found", runID)
}

func InitializeSchedulerScenario(ctx *godog.ScenarioContext) {
	sc := sharedSimulation

	ctx.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		return ctx, sc.reset()
	})

	ctx.Step(`^the default scenario built with seed (\d+)$`, sc.theDefaultScenarioBuiltWithSeed)
	ctx.Step(`^the scheduler runs (\d+) days?$`, sc.theSchedulerRunsDays)
	ctx.Step(`^the scheduler is asked to run again$`, sc.theSchedulerIsAskedToRunAgain)
	ctx.Step(`^the scheduler is paused$`, sc.theSchedulerIsPaused)
	ctx.Step(`^the world is on day (\d+)$`, sc.theWorldIsOnDay)
	ctx.Step(`^the scheduler is "([^"]*)"$`, sc.theSchedulerIs)
	ctx.Step(`^the scheduler refuses to "([^"]*)" from "([^"]*)"$`, sc.theSchedulerRefuses)
}

func InitializeJournalScenario(ctx *godog.ScenarioContext) {
	sc := sharedSimulation

	ctx.Step(`^the journal is recording run "([^"]*)"$`, sc.theJournalIsRecordingRun)
	ctx.Step(`^the journal holds (\d+) entries for run "([^"]*)"$`, sc.theJournalHoldsEntriesForRun)
	ctx.Step(`^the journal holds (\d+) entries for nation "([^"]*)" in run "([^"]*)"$`, sc.theJournalHoldsEntriesForNation)
	ctx.Step(`^the journal entry of "([^"]*)" on day (\d+) shows (\d+) guns$`, sc.theEntryShowsGuns)
	ctx.Step(`^the journal entry of "([^"]*)" on day (\d+) shows (\d+) artillery$`, sc.theEntryShowsArtillery)
	ctx.Step(`^run "([^"]*)" is finished after (\d+) days$`, sc.runIsFinishedAfterDays)
}
