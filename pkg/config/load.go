package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path,
// applies defaults, and validates the result. A missing file is not an
// error; the returned configuration is then defaults only.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Run on defaults; deployment may inject everything via env.
	case err != nil:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention ASKBOARD_SECTION_FIELD (e.g. ASKBOARD_SERVER_LISTEN_ADDRESS)
// and always take precedence over file-based configuration.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies ASKBOARD_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	// Server overrides
	if val := os.Getenv("ASKBOARD_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("ASKBOARD_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("ASKBOARD_SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := os.Getenv("ASKBOARD_SERVER_SHUTDOWN_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}

	// CORS overrides (comma-separated origin list)
	if val := os.Getenv("ASKBOARD_CORS_ALLOWED_ORIGINS"); val != "" {
		origins := strings.Split(val, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORS.AllowedOrigins = origins
	}

	// Storage overrides
	if val := os.Getenv("ASKBOARD_STORAGE_BACKEND"); val != "" {
		cfg.Storage.Backend = val
	}
	if val := os.Getenv("ASKBOARD_STORAGE_PATH"); val != "" {
		cfg.Storage.Path = val
	}
	if val := os.Getenv("ASKBOARD_STORAGE_RESET_SCHEMA"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Storage.ResetSchema = b
		}
	}

	// Retention overrides
	if val := os.Getenv("ASKBOARD_RETENTION_SCHEDULE"); val != "" {
		cfg.Retention.Schedule = val
	}
	if val := os.Getenv("ASKBOARD_RETENTION_UTC_OFFSET_HOURS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Retention.UTCOffsetHours = i
		}
	}

	// Telemetry overrides
	if val := os.Getenv("ASKBOARD_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("ASKBOARD_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("ASKBOARD_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = &b
		}
	}
}
