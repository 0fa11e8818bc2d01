package config

import (
	"fmt"
	"net"
	"strings"
)

// Validate checks a configuration for invalid or inconsistent values.
func Validate(cfg *Config) error {
	var errs []string

	// Server
	if cfg.Server.ListenAddress == "" {
		errs = append(errs, "server.listen_address must not be empty")
	} else if _, _, err := net.SplitHostPort(cfg.Server.ListenAddress); err != nil {
		errs = append(errs, fmt.Sprintf("server.listen_address %q is not host:port: %v", cfg.Server.ListenAddress, err))
	}
	if cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, "server.shutdown_timeout must not be negative")
	}

	// CORS
	if len(cfg.CORS.AllowedOrigins) == 0 {
		errs = append(errs, "cors.allowed_origins must not be empty")
	}
	for _, origin := range cfg.CORS.AllowedOrigins {
		if origin == "" {
			errs = append(errs, "cors.allowed_origins must not contain empty entries")
			break
		}
	}

	// Storage
	switch cfg.Storage.Backend {
	case "sqlite":
		if cfg.Storage.Path == "" {
			errs = append(errs, "storage.path must not be empty for the sqlite backend")
		}
	case "memory":
		// No further settings.
	default:
		errs = append(errs, fmt.Sprintf("storage.backend %q is not supported (sqlite, memory)", cfg.Storage.Backend))
	}

	// Retention
	if cfg.Retention.Schedule == "" {
		errs = append(errs, "retention.schedule must not be empty")
	}
	if cfg.Retention.UTCOffsetHours < -12 || cfg.Retention.UTCOffsetHours > 14 {
		errs = append(errs, fmt.Sprintf("retention.utc_offset_hours %d is outside the valid range [-12, 14]", cfg.Retention.UTCOffsetHours))
	}

	// Telemetry
	switch cfg.Telemetry.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("telemetry.logging.level %q is not one of debug, info, warn, error", cfg.Telemetry.Logging.Level))
	}
	switch cfg.Telemetry.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("telemetry.logging.format %q is not one of json, text", cfg.Telemetry.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
