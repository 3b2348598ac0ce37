package config

import "time"

// SimulationConfig holds the settings of a simulation run
type SimulationConfig struct {
	// Scenario YAML file; empty selects the built-in scenario
	ScenarioPath string `mapstructure:"scenario_path"`

	// Seed for focus-target selection; 0 draws a seed from the OS
	Seed uint64 `mapstructure:"seed"`

	// Wall-clock time between simulated days; 0 runs as fast as possible
	DayInterval time.Duration `mapstructure:"day_interval" validate:"min=0"`

	// Days to simulate in batch mode; 0 runs until interrupted
	Days int `mapstructure:"days" validate:"min=0"`

	// Start the scheduler paused (interactive front ends)
	StartPaused bool `mapstructure:"start_paused"`
}
