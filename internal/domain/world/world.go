package world

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

// World is the set of independently simulated nations plus the day counter
type World struct {
	nations []*nation.Nation
	day     int
}

// NewWorld rejects duplicate nation names (case-insensitive) and nil nations
func NewWorld(nations ...*nation.Nation) (*World, error) {
	seen := make(map[string]bool, len(nations))
	for i, n := range nations {
		if n == nil {
			return nil, shared.NewValidationError("nations", fmt.Sprintf("nation %d is nil", i))
		}
		key := strings.ToLower(n.Name())
		if seen[key] {
			return nil, shared.NewValidationError("nations", fmt.Sprintf("duplicate nation name %q", n.Name()))
		}
		seen[key] = true
	}
	return &World{nations: nations}, nil
}

func (w *World) Day() int { return w.day }

// Nations returns the nations in setup order
func (w *World) Nations() []*nation.Nation {
	out := make([]*nation.Nation, len(w.nations))
	copy(out, w.nations)
	return out
}

// Nation returns the nation at index
func (w *World) Nation(index int) (*nation.Nation, error) {
	if index < 0 || index >= len(w.nations) {
		return nil, &ErrNationNotFound{Ref: fmt.Sprintf("#%d", index)}
	}
	return w.nations[index], nil
}

// NationByName looks a nation up case-insensitively
func (w *World) NationByName(name string) (*nation.Nation, error) {
	for _, n := range w.nations {
		if strings.EqualFold(n.Name(), name) {
			return n, nil
		}
	}
	return nil, &ErrNationNotFound{Ref: name}
}

// SimulateDay advances the day counter and then every nation, in order
func (w *World) SimulateDay() []nation.DayReport {
	w.day++
	reports := make([]nation.DayReport, 0, len(w.nations))
	for _, n := range w.nations {
		reports = append(reports, n.SimulateDay())
	}
	return reports
}

// ErrNationNotFound indicates a lookup by name or index matched nothing
type ErrNationNotFound struct {
	Ref string
}

func (e *ErrNationNotFound) Error() string {
	return fmt.Sprintf("nation not found: %s", e.Ref)
}
