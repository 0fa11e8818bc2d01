package config

import "time"

// DefaultConfig returns a configuration populated with all default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for any zero-valued fields.
func ApplyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = "127.0.0.1:8000"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	// CORS defaults
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}
	if cfg.CORS.AllowCredentials == nil {
		cfg.CORS.AllowCredentials = boolPtr(true)
	}
	if cfg.CORS.MaxAge == 0 {
		cfg.CORS.MaxAge = 3600
	}

	// Storage defaults
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "sqlite"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "data/askboard.db"
	}
	if cfg.Storage.BusyTimeout == 0 {
		cfg.Storage.BusyTimeout = 5 * time.Second
	}

	// Retention defaults
	if cfg.Retention.Schedule == "" {
		cfg.Retention.Schedule = "0 0 * * *"
	}
	if cfg.Retention.UTCOffsetHours == 0 {
		cfg.Retention.UTCOffsetHours = 9
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = "info"
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = "json"
	}
	if cfg.Telemetry.Metrics.Enabled == nil {
		cfg.Telemetry.Metrics.Enabled = boolPtr(true)
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = "askboard"
	}
}

func boolPtr(b bool) *bool {
	return &b
}
