package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/nationsim-go/internal/application/session"
	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

// Options configures a Scheduler
type Options struct {
	// Interval is the wall time between days; 0 runs as fast as possible
	Interval    time.Duration
	StartPaused bool
	Logger      *slog.Logger
	Clock       shared.Clock
}

type namedObserver struct {
	name     string
	observer DayObserver
}

// Scheduler advances a session's world one day at a time and fans each
// day's reports out to its observers
type Scheduler struct {
	session     *session.Session
	limiter     *rate.Limiter
	logger      *slog.Logger
	startPaused bool

	mu        sync.Mutex
	lifecycle *lifecycle
	observers []namedObserver
	daysRun   int
	wake      chan struct{}
}

func New(s *session.Session, opts Options) *Scheduler {
	limit := rate.Inf
	if opts.Interval > 0 {
		limit = rate.Every(opts.Interval)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		session:     s,
		limiter:     rate.NewLimiter(limit, 1),
		logger:      logger,
		startPaused: opts.StartPaused,
		lifecycle:   newLifecycle(opts.Clock),
		wake:        make(chan struct{}, 1),
	}
}

// AddObserver registers an observer. Observers run in registration order.
func (s *Scheduler) AddObserver(name string, o DayObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, namedObserver{name: name, observer: o})
}

func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lifecycle.status
}

// DaysRun counts the days this scheduler has simulated, manual steps included
func (s *Scheduler) DaysRun() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.daysRun
}

// Elapsed returns the wall time spent in Run
func (s *Scheduler) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lifecycle.elapsed()
}

func (s *Scheduler) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lifecycle.pause()
}

func (s *Scheduler) Resume() error {
	s.mu.Lock()
	err := s.lifecycle.resume()
	s.mu.Unlock()
	if err == nil {
		s.signal()
	}
	return err
}

// Stop ends the run after the current day. A stopped scheduler cannot be restarted.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	err := s.lifecycle.stop()
	s.mu.Unlock()
	if err == nil {
		s.signal()
	}
	return err
}

func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Step simulates one day immediately, ignoring pacing, and notifies the observers
func (s *Scheduler) Step(ctx context.Context) (int, []nation.DayReport, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	s.mu.Lock()
	if s.lifecycle.status == StatusStopped {
		s.mu.Unlock()
		return 0, nil, &ErrInvalidTransition{Action: "step", From: StatusStopped}
	}
	observers := append([]namedObserver(nil), s.observers...)
	s.mu.Unlock()

	day, reports := s.session.Advance()

	s.mu.Lock()
	s.daysRun++
	s.mu.Unlock()

	for _, o := range observers {
		if err := o.observer.ObserveDay(ctx, day, reports); err != nil {
			s.logger.Error("day observer failed", "observer", o.name, "day", day, "error", err)
		}
	}
	return day, reports, nil
}

// Run simulates days until days have passed (0 means no limit), Stop is
// called or ctx is done. The scheduler ends STOPPED in every case.
func (s *Scheduler) Run(ctx context.Context, days int) error {
	if days < 0 {
		return fmt.Errorf("days cannot be negative, got %d", days)
	}

	s.mu.Lock()
	if err := s.lifecycle.start(); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.startPaused {
		_ = s.lifecycle.pause()
	}
	s.mu.Unlock()

	s.logger.Info("scheduler started", "days", days, "start_day", s.session.Day())
	defer func() {
		s.mu.Lock()
		if s.lifecycle.status != StatusStopped {
			_ = s.lifecycle.stop()
		}
		s.mu.Unlock()
		s.logger.Info("scheduler stopped", "day", s.session.Day(), "days_run", s.DaysRun())
	}()

	for ran := 0; days == 0 || ran < days; {
		proceed, err := s.waitWhilePaused(ctx)
		if err != nil || !proceed {
			return err
		}
		if err := s.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return err
		}

		// Pause or Stop may have landed while waiting for the limiter
		switch s.Status() {
		case StatusStopped:
			return nil
		case StatusPaused:
			continue
		}

		if _, _, err := s.Step(ctx); err != nil {
			if s.Status() == StatusStopped {
				return nil
			}
			return err
		}
		ran++
	}
	return nil
}

// waitWhilePaused blocks while the scheduler is paused. It returns false once
// the scheduler has been stopped.
func (s *Scheduler) waitWhilePaused(ctx context.Context) (bool, error) {
	for {
		switch s.Status() {
		case StatusStopped:
			return false, nil
		case StatusRunning:
			return true, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-s.wake:
		}
	}
}
