package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nationsim-go/internal/adapters/persistence"
	"github.com/andrescamacho/nationsim-go/internal/application/journal"
	"github.com/andrescamacho/nationsim-go/test/helpers"
)

func TestJournalRepository_RunLifecycle(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormJournalRepository(db)
	ctx := context.Background()
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Act
	require.NoError(t, repo.StartRun(ctx, journal.Run{ID: "danube-1a2b3c4d", Scenario: "Danube 1936", Seed: 42, StartedAt: started}))
	require.NoError(t, repo.FinishRun(ctx, "danube-1a2b3c4d", 30, started.Add(time.Minute)))

	// Assert
	runs, err := repo.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, uint64(42), runs[0].Seed)
	assert.Equal(t, 30, runs[0].Days)
	require.NotNil(t, runs[0].FinishedAt)
}

func TestJournalRepository_FinishUnknownRun(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormJournalRepository(db)

	err := repo.FinishRun(context.Background(), "missing", 1, time.Now())

	assert.Error(t, err)
}

func TestJournalRepository_AppendAndListEntries(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormJournalRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, repo.StartRun(ctx, journal.Run{ID: "r1", Scenario: "s", StartedAt: now}))

	// Act
	require.NoError(t, repo.AppendEntries(ctx, []journal.Entry{
		{RunID: "r1", Day: 2, Nation: "Romania", Guns: 400, RecordedAt: now},
		{RunID: "r1", Day: 2, Nation: "Hungary", Artillery: 40, RecordedAt: now},
	}))
	require.NoError(t, repo.AppendEntries(ctx, []journal.Entry{
		{RunID: "r1", Day: 1, Nation: "Romania", Guns: 200, CompletedFocus: "Military Buildup", FocusProvince: "Moldavia", RecordedAt: now},
	}))
	require.NoError(t, repo.AppendEntries(ctx, nil))

	// Assert
	all, err := repo.ListEntries(ctx, "r1", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	romania, err := repo.ListEntries(ctx, "r1", "Romania")
	require.NoError(t, err)
	require.Len(t, romania, 2)
	assert.Equal(t, 1, romania[0].Day)
	assert.Equal(t, int64(200), romania[0].Guns)
	assert.Equal(t, "Moldavia", romania[0].FocusProvince)
	assert.Equal(t, int64(400), romania[1].Guns)
}
