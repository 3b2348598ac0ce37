package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
	if cfg.Logging.Rotation.MaxSize == 0 {
		cfg.Logging.Rotation.MaxSize = 100 // MB
	}
	if cfg.Logging.Rotation.MaxBackups == 0 {
		cfg.Logging.Rotation.MaxBackups = 3
	}
	if cfg.Logging.Rotation.MaxAge == 0 {
		cfg.Logging.Rotation.MaxAge = 28 // days
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9464
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Journal defaults
	if cfg.Journal.Type == "" {
		cfg.Journal.Type = "sqlite"
	}
	if cfg.Journal.Type == "sqlite" && cfg.Journal.Path == "" {
		cfg.Journal.Path = "nationsim.db"
	}
	if cfg.Journal.Type == "postgres" {
		if cfg.Journal.Host == "" {
			cfg.Journal.Host = "localhost"
		}
		if cfg.Journal.Port == 0 {
			cfg.Journal.Port = 5432
		}
		if cfg.Journal.User == "" {
			cfg.Journal.User = "nationsim"
		}
		if cfg.Journal.Name == "" {
			cfg.Journal.Name = "nationsim"
		}
		if cfg.Journal.SSLMode == "" {
			cfg.Journal.SSLMode = "disable"
		}
	}
	if cfg.Journal.Pool.MaxOpen == 0 {
		cfg.Journal.Pool.MaxOpen = 10
	}
	if cfg.Journal.Pool.MaxIdle == 0 {
		cfg.Journal.Pool.MaxIdle = 2
	}
	if cfg.Journal.Pool.MaxLifetime == 0 {
		cfg.Journal.Pool.MaxLifetime = 5 * time.Minute
	}
}
