package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nationsim-go/internal/application/scheduler"
	"github.com/andrescamacho/nationsim-go/internal/application/session"
	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
	"github.com/andrescamacho/nationsim-go/internal/infrastructure/logging"
	"github.com/andrescamacho/nationsim-go/test/helpers"
)

func newScheduler(t *testing.T, opts scheduler.Options) (*scheduler.Scheduler, *session.Session) {
	t.Helper()
	s := session.New(helpers.NewTestWorld(t), "test")
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return scheduler.New(s, opts), s
}

func TestScheduler_RunsRequestedDays(t *testing.T) {
	sched, s := newScheduler(t, scheduler.Options{})
	var seen []int
	sched.AddObserver("recorder", scheduler.ObserverFunc(func(ctx context.Context, day int, reports []nation.DayReport) error {
		seen = append(seen, day)
		assert.Len(t, reports, 2)
		return nil
	}))

	err := sched.Run(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
	assert.Equal(t, 5, s.Day())
	assert.Equal(t, 5, sched.DaysRun())
	assert.Equal(t, scheduler.StatusStopped, sched.Status())
}

func TestScheduler_ObserverFailureDoesNotStopRun(t *testing.T) {
	sched, s := newScheduler(t, scheduler.Options{})
	var after int32
	sched.AddObserver("broken", scheduler.ObserverFunc(func(context.Context, int, []nation.DayReport) error {
		return errors.New("disk full")
	}))
	sched.AddObserver("counter", scheduler.ObserverFunc(func(context.Context, int, []nation.DayReport) error {
		atomic.AddInt32(&after, 1)
		return nil
	}))

	err := sched.Run(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 3, s.Day())
	assert.Equal(t, int32(3), atomic.LoadInt32(&after))
}

func TestScheduler_StopFromObserver(t *testing.T) {
	sched, s := newScheduler(t, scheduler.Options{})
	sched.AddObserver("stopper", scheduler.ObserverFunc(func(ctx context.Context, day int, _ []nation.DayReport) error {
		if day == 4 {
			return sched.Stop()
		}
		return nil
	}))

	err := sched.Run(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 4, s.Day())
	assert.Equal(t, scheduler.StatusStopped, sched.Status())
}

func TestScheduler_ContextCancellation(t *testing.T) {
	sched, _ := newScheduler(t, scheduler.Options{Interval: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	sched.AddObserver("cancel", scheduler.ObserverFunc(func(context.Context, int, []nation.DayReport) error {
		cancel()
		return nil
	}))

	err := sched.Run(ctx, 0)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, sched.DaysRun())
	assert.Equal(t, scheduler.StatusStopped, sched.Status())
}

func TestScheduler_StartPausedThenResume(t *testing.T) {
	sched, s := newScheduler(t, scheduler.Options{StartPaused: true})
	done := make(chan error, 1)

	go func() { done <- sched.Run(context.Background(), 2) }()

	require.Eventually(t, func() bool { return sched.Status() == scheduler.StatusPaused }, time.Second, time.Millisecond)
	assert.Equal(t, 0, s.Day())

	require.NoError(t, sched.Resume())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not finish after resume")
	}
	assert.Equal(t, 2, s.Day())
}

func TestScheduler_PauseDuringIntervalHoldsNextDay(t *testing.T) {
	sched, s := newScheduler(t, scheduler.Options{Interval: 200 * time.Millisecond})
	done := make(chan error, 1)

	go func() { done <- sched.Run(context.Background(), 0) }()
	require.Eventually(t, func() bool { return s.Day() == 1 }, time.Second, time.Millisecond)

	// the run is now waiting out the interval before day 2
	require.NoError(t, sched.Pause())
	time.Sleep(600 * time.Millisecond)

	assert.Equal(t, 1, s.Day())
	assert.Equal(t, 1, sched.DaysRun())
	assert.Equal(t, scheduler.StatusPaused, sched.Status())

	require.NoError(t, sched.Resume())
	require.Eventually(t, func() bool { return s.Day() >= 2 }, 2*time.Second, time.Millisecond)

	require.NoError(t, sched.Stop())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_StopWhilePaused(t *testing.T) {
	sched, s := newScheduler(t, scheduler.Options{StartPaused: true})
	done := make(chan error, 1)

	go func() { done <- sched.Run(context.Background(), 0) }()
	require.Eventually(t, func() bool { return sched.Status() == scheduler.StatusPaused }, time.Second, time.Millisecond)

	require.NoError(t, sched.Stop())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Equal(t, 0, s.Day())
}

func TestScheduler_InvalidTransitions(t *testing.T) {
	sched, _ := newScheduler(t, scheduler.Options{})

	var transition *scheduler.ErrInvalidTransition
	assert.ErrorAs(t, sched.Pause(), &transition)
	assert.ErrorAs(t, sched.Resume(), &transition)

	require.NoError(t, sched.Run(context.Background(), 1))

	assert.ErrorAs(t, sched.Run(context.Background(), 1), &transition)
	assert.ErrorAs(t, sched.Stop(), &transition)
	_, _, err := sched.Step(context.Background())
	assert.ErrorAs(t, err, &transition)
}

func TestScheduler_StepBeforeRun(t *testing.T) {
	sched, _ := newScheduler(t, scheduler.Options{})
	reporter := scheduler.NewLogReporter(logging.Discard())
	sched.AddObserver("log", reporter)

	day, reports, err := sched.Step(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, day)
	assert.Len(t, reports, 2)
	assert.Equal(t, scheduler.StatusPending, sched.Status())
}

func TestScheduler_RejectsNegativeDays(t *testing.T) {
	sched, _ := newScheduler(t, scheduler.Options{})

	assert.Error(t, sched.Run(context.Background(), -1))
	assert.Equal(t, scheduler.StatusPending, sched.Status())
}
