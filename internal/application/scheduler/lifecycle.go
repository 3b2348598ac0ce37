package scheduler

import (
	"fmt"
	"time"

	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

// Status is the scheduler's lifecycle state
type Status string

const (
	StatusPending Status = "PENDING"
	StatusRunning Status = "RUNNING"
	StatusPaused  Status = "PAUSED"
	StatusStopped Status = "STOPPED"
)

// ErrInvalidTransition is returned when an action is not allowed from the current state
type ErrInvalidTransition struct {
	Action string
	From   Status
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot %s scheduler from %s state", e.Action, e.From)
}

// lifecycle tracks PENDING -> RUNNING <-> PAUSED -> STOPPED.
// STOPPED is terminal. Callers synchronize access.
type lifecycle struct {
	status    Status
	startedAt *time.Time
	stoppedAt *time.Time
	clock     shared.Clock
}

func newLifecycle(clock shared.Clock) *lifecycle {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &lifecycle{status: StatusPending, clock: clock}
}

func (l *lifecycle) start() error {
	if l.status != StatusPending {
		return &ErrInvalidTransition{Action: "start", From: l.status}
	}
	now := l.clock.Now()
	l.status = StatusRunning
	l.startedAt = &now
	return nil
}

func (l *lifecycle) pause() error {
	if l.status != StatusRunning {
		return &ErrInvalidTransition{Action: "pause", From: l.status}
	}
	l.status = StatusPaused
	return nil
}

func (l *lifecycle) resume() error {
	if l.status != StatusPaused {
		return &ErrInvalidTransition{Action: "resume", From: l.status}
	}
	l.status = StatusRunning
	return nil
}

func (l *lifecycle) stop() error {
	if l.status == StatusStopped {
		return &ErrInvalidTransition{Action: "stop", From: l.status}
	}
	now := l.clock.Now()
	l.status = StatusStopped
	l.stoppedAt = &now
	return nil
}

// elapsed is the wall time between start and stop, or until now while running
func (l *lifecycle) elapsed() time.Duration {
	if l.startedAt == nil {
		return 0
	}
	end := l.clock.Now()
	if l.stoppedAt != nil {
		end = *l.stoppedAt
	}
	return end.Sub(*l.startedAt)
}
