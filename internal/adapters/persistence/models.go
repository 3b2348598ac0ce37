package persistence

import (
	"time"
)

// RunModel represents the simulation_runs table
type RunModel struct {
	RunID      string     `gorm:"column:run_id;primaryKey"`
	Scenario   string     `gorm:"column:scenario;not null"`
	Seed       int64      `gorm:"column:seed;not null;default:0"` // uint64 bit pattern
	StartedAt  time.Time  `gorm:"column:started_at;not null"`
	FinishedAt *time.Time `gorm:"column:finished_at"`
	Days       int        `gorm:"column:days;not null;default:0"`
}

func (RunModel) TableName() string {
	return "simulation_runs"
}

// DayReportModel represents the day_reports table (one row per nation per day)
type DayReportModel struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement"`
	RunID       string  `gorm:"column:run_id;not null;index:idx_day_reports_run_day"`
	Day         int     `gorm:"column:day;not null;index:idx_day_reports_run_day"`
	Nation      string  `gorm:"column:nation;not null;index"`
	FuelGained  int     `gorm:"column:fuel_gained;not null"`
	Fuel        int     `gorm:"column:fuel;not null"`
	Manpower    int     `gorm:"column:manpower;not null"`
	Civ         int     `gorm:"column:civ_factories;not null"`
	Mil         int     `gorm:"column:mil_factories;not null"`
	UsedMil     int     `gorm:"column:used_mil_factories;not null"`
	QueueDepth  int     `gorm:"column:queue_depth;not null"`
	BuildPoints float64 `gorm:"column:build_points;not null"`
	ActiveFocus string  `gorm:"column:active_focus"`
	Guns        int64   `gorm:"column:guns;not null"`
	Artillery   int64   `gorm:"column:artillery;not null"`
	AntiAir     int64   `gorm:"column:anti_air;not null"`
	CAS         int64   `gorm:"column:cas;not null"`

	CompletedBuilding         string `gorm:"column:completed_building"`
	CompletedBuildingProvince string `gorm:"column:completed_building_province"`
	CompletedFocus            string `gorm:"column:completed_focus"`
	FocusProvince             string `gorm:"column:focus_province"`

	RecordedAt time.Time `gorm:"column:recorded_at;not null"`
}

func (DayReportModel) TableName() string {
	return "day_reports"
}
