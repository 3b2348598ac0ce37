package journal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nationsim-go/internal/application/journal"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
	"github.com/andrescamacho/nationsim-go/test/helpers"
)

func TestRecorder_WritesOneEntryPerNation(t *testing.T) {
	// Arrange
	repo := helpers.NewMockJournalRepository()
	clock := shared.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	rec := journal.NewRecorder(repo, journal.Run{ID: "run-1", Scenario: "test"}, clock)
	w := helpers.NewTestWorld(t)
	ctx := context.Background()
	require.NoError(t, rec.Start(ctx))

	// Act
	for i := 0; i < 3; i++ {
		reports := w.SimulateDay()
		require.NoError(t, rec.ObserveDay(ctx, w.Day(), reports))
		clock.Advance(time.Second)
	}
	require.NoError(t, rec.Finish(ctx, w.Day()))

	// Assert
	entries, err := repo.ListEntries(ctx, "run-1", "Romania")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 3, entries[2].Day)
	assert.Equal(t, int64(600), entries[2].Guns)
	assert.Equal(t, 90, entries[2].Fuel)
	assert.Equal(t, 35.0, entries[2].BuildPoints)
	assert.Equal(t, clock.Now().Add(-time.Second), entries[2].RecordedAt)

	runs, err := repo.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 3, runs[0].Days)
	assert.False(t, runs[0].StartedAt.IsZero())
}

func TestRecorder_WrapsRepositoryErrors(t *testing.T) {
	repo := helpers.NewMockJournalRepository()
	repo.AppendErr = errors.New("disk full")
	rec := journal.NewRecorder(repo, journal.Run{ID: "run-2"}, nil)
	w := helpers.NewTestWorld(t)

	err := rec.ObserveDay(context.Background(), 1, w.SimulateDay())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 1")
	assert.Contains(t, err.Error(), "disk full")
}
