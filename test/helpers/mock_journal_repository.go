package helpers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/andrescamacho/nationsim-go/internal/application/journal"
)

// MockJournalRepository is an in-memory journal.Repository with error injection
type MockJournalRepository struct {
	mu      sync.Mutex
	runs    map[string]*journal.Run
	entries []journal.Entry

	// AppendErr, when set, is returned by every AppendEntries call
	AppendErr error
}

func NewMockJournalRepository() *MockJournalRepository {
	return &MockJournalRepository{runs: make(map[string]*journal.Run)}
}

func (m *MockJournalRepository) StartRun(ctx context.Context, run journal.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.runs[run.ID]; exists {
		return fmt.Errorf("run already exists: %s", run.ID)
	}
	m.runs[run.ID] = &run
	return nil
}

func (m *MockJournalRepository) FinishRun(ctx context.Context, runID string, days int, finishedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[runID]
	if !ok {
		return fmt.Errorf("run not found: %s", runID)
	}
	run.Days = days
	run.FinishedAt = &finishedAt
	return nil
}

func (m *MockJournalRepository) AppendEntries(ctx context.Context, entries []journal.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *MockJournalRepository) ListRuns(ctx context.Context) ([]journal.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	runs := make([]journal.Run, 0, len(m.runs))
	for _, r := range m.runs {
		runs = append(runs, *r)
	}
	return runs, nil
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, runID, nation string) ([]journal.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []journal.Entry
	for _, e := range m.entries {
		if e.RunID == runID && (nation == "" || e.Nation == nation) {
			out = append(out, e)
		}
	}
	return out, nil
}
