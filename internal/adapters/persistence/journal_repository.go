package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/nationsim-go/internal/application/journal"
)

// GormJournalRepository implements journal.Repository using GORM
type GormJournalRepository struct {
	db *gorm.DB
}

// NewGormJournalRepository creates a new GORM journal repository
func NewGormJournalRepository(db *gorm.DB) *GormJournalRepository {
	return &GormJournalRepository{db: db}
}

// StartRun inserts the run row
func (r *GormJournalRepository) StartRun(ctx context.Context, run journal.Run) error {
	model := RunModel{
		RunID:      run.ID,
		Scenario:   run.Scenario,
		Seed:       int64(run.Seed),
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Days:       run.Days,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// FinishRun records the final day count of a run
func (r *GormJournalRepository) FinishRun(ctx context.Context, runID string, days int, finishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&RunModel{}).
		Where("run_id = ?", runID).
		Updates(map[string]interface{}{"days": days, "finished_at": finishedAt})
	if result.Error != nil {
		return fmt.Errorf("failed to finish run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}
	return nil
}

// AppendEntries inserts one day's entries in a single transaction
func (r *GormJournalRepository) AppendEntries(ctx context.Context, entries []journal.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	models := make([]DayReportModel, 0, len(entries))
	for _, e := range entries {
		models = append(models, entryToModel(e))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("failed to append day reports: %w", err)
		}
		return nil
	})
}

// ListRuns returns all runs, newest first
func (r *GormJournalRepository) ListRuns(ctx context.Context) ([]journal.Run, error) {
	var models []RunModel
	if err := r.db.WithContext(ctx).Order("started_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]journal.Run, 0, len(models))
	for _, m := range models {
		runs = append(runs, journal.Run{
			ID:         m.RunID,
			Scenario:   m.Scenario,
			Seed:       uint64(m.Seed),
			StartedAt:  m.StartedAt,
			FinishedAt: m.FinishedAt,
			Days:       m.Days,
		})
	}
	return runs, nil
}

// ListEntries returns a run's entries ordered by day, optionally for one nation
func (r *GormJournalRepository) ListEntries(ctx context.Context, runID, nation string) ([]journal.Entry, error) {
	query := r.db.WithContext(ctx).Where("run_id = ?", runID)
	if nation != "" {
		query = query.Where("nation = ?", nation)
	}

	var models []DayReportModel
	if err := query.Order("day ASC, id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list day reports: %w", err)
	}

	entries := make([]journal.Entry, 0, len(models))
	for _, m := range models {
		entries = append(entries, modelToEntry(m))
	}
	return entries, nil
}

func entryToModel(e journal.Entry) DayReportModel {
	return DayReportModel{
		RunID:                     e.RunID,
		Day:                       e.Day,
		Nation:                    e.Nation,
		FuelGained:                e.FuelGained,
		Fuel:                      e.Fuel,
		Manpower:                  e.Manpower,
		Civ:                       e.Civ,
		Mil:                       e.Mil,
		UsedMil:                   e.UsedMil,
		QueueDepth:                e.QueueDepth,
		BuildPoints:               e.BuildPoints,
		ActiveFocus:               e.ActiveFocus,
		Guns:                      e.Guns,
		Artillery:                 e.Artillery,
		AntiAir:                   e.AntiAir,
		CAS:                       e.CAS,
		CompletedBuilding:         e.CompletedBuilding,
		CompletedBuildingProvince: e.CompletedBuildingProvince,
		CompletedFocus:            e.CompletedFocus,
		FocusProvince:             e.FocusProvince,
		RecordedAt:                e.RecordedAt,
	}
}

func modelToEntry(m DayReportModel) journal.Entry {
	return journal.Entry{
		RunID:                     m.RunID,
		Day:                       m.Day,
		Nation:                    m.Nation,
		FuelGained:                m.FuelGained,
		Fuel:                      m.Fuel,
		Manpower:                  m.Manpower,
		Civ:                       m.Civ,
		Mil:                       m.Mil,
		UsedMil:                   m.UsedMil,
		QueueDepth:                m.QueueDepth,
		BuildPoints:               m.BuildPoints,
		ActiveFocus:               m.ActiveFocus,
		Guns:                      m.Guns,
		Artillery:                 m.Artillery,
		AntiAir:                   m.AntiAir,
		CAS:                       m.CAS,
		CompletedBuilding:         m.CompletedBuilding,
		CompletedBuildingProvince: m.CompletedBuildingProvince,
		CompletedFocus:            m.CompletedFocus,
		FocusProvince:             m.FocusProvince,
		RecordedAt:                m.RecordedAt,
	}
}
