package session

import (
	"strconv"
	"strings"
	"sync"

	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
	"github.com/andrescamacho/nationsim-go/internal/domain/world"
)

// Session serializes every access to one World, so front-end commands and
// scheduler ticks never interleave inside a simulated day
type Session struct {
	mu       sync.RWMutex
	world    *world.World
	scenario string
	selected int
}

func New(w *world.World, scenario string) *Session {
	return &Session{world: w, scenario: scenario}
}

// Scenario is the name of the scenario the world was built from
func (s *Session) Scenario() string { return s.scenario }

// Read runs fn under the shared lock. fn must not modify the world.
func (s *Session) Read(fn func(w *world.World) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.world)
}

// Write runs fn under the exclusive lock
func (s *Session) Write(fn func(w *world.World) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.world)
}

// Advance simulates one day for every nation
func (s *Session) Advance() (int, []nation.DayReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports := s.world.SimulateDay()
	return s.world.Day(), reports
}

// Day returns the current day
func (s *Session) Day() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.world.Day()
}

// Select makes ref the default nation for commands that omit one
func (s *Session) Select(ref string) (*nation.Nation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, n, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	s.selected = idx
	return n, nil
}

// SelectedIndex returns the index of the selected nation
func (s *Session) SelectedIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Resolve finds a nation by name or index; an empty ref means the selected
// nation. Callers must hold the lock, which Read and Write provide.
func (s *Session) Resolve(w *world.World, ref string) (*nation.Nation, error) {
	_, n, err := s.resolveIn(w, ref)
	return n, err
}

func (s *Session) resolve(ref string) (int, *nation.Nation, error) {
	return s.resolveIn(s.world, ref)
}

func (s *Session) resolveIn(w *world.World, ref string) (int, *nation.Nation, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		n, err := w.Nation(s.selected)
		return s.selected, n, err
	}
	if idx, err := strconv.Atoi(ref); err == nil {
		n, err := w.Nation(idx)
		return idx, n, err
	}
	n, err := w.NationByName(ref)
	if err != nil {
		return 0, nil, err
	}
	for i, candidate := range w.Nations() {
		if candidate == n {
			return i, n, nil
		}
	}
	return 0, n, nil
}
