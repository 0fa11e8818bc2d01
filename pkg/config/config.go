package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure for the Askboard service.
type Config struct {
	// Server contains HTTP server configuration including listen address
	// and timeouts.
	Server ServerConfig `yaml:"server"`

	// CORS contains the cross-origin allow-list for the board frontend.
	CORS CORSConfig `yaml:"cors"`

	// Storage contains configuration for the question store.
	Storage StorageConfig `yaml:"storage"`

	// Retention contains configuration for the daily content lifecycle.
	Retention RetentionConfig `yaml:"retention"`

	// Telemetry contains configuration for logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port". Default: "127.0.0.1:8000"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	// Default: 15s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out response writes.
	// Default: 15s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the keep-alive idle timeout.
	// Default: 60s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CORSConfig contains the cross-origin policy for the board endpoints.
// All methods and headers are permitted for allowed origins.
type CORSConfig struct {
	// AllowedOrigins is the fixed allow-list of origins that may call the
	// API. Use ["*"] to allow all origins (development only).
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowCredentials controls whether credentialed requests are allowed.
	// A pointer so that an explicit false survives defaulting.
	// Default: true
	AllowCredentials *bool `yaml:"allow_credentials"`

	// MaxAge is the preflight cache duration in seconds.
	// Default: 3600
	MaxAge int `yaml:"max_age"`
}

// CredentialsAllowed reports whether credentialed requests are allowed,
// treating an unset value as the default (true).
func (c CORSConfig) CredentialsAllowed() bool {
	return c.AllowCredentials == nil || *c.AllowCredentials
}

// StorageConfig contains configuration for the question store.
type StorageConfig struct {
	// Backend selects the storage backend: "sqlite" or "memory".
	// Default: "sqlite"
	Backend string `yaml:"backend"`

	// Path is the SQLite database file path.
	// Default: "data/askboard.db"
	Path string `yaml:"path"`

	// BusyTimeout is how long to wait for SQLite locks before failing.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`

	// ResetSchema controls the startup wipe variant. When true the schema
	// is dropped and recreated at boot (also resetting the id counter);
	// when false only the rows are deleted.
	// Default: false
	ResetSchema bool `yaml:"reset_schema"`
}

// RetentionConfig contains configuration for the daily content lifecycle.
type RetentionConfig struct {
	// Schedule is the cron expression for the daily retention trigger,
	// evaluated in the display timezone.
	// Default: "0 0 * * *" (midnight)
	Schedule string `yaml:"schedule"`

	// UTCOffsetHours is the fixed UTC offset of the display timezone the
	// day boundary is computed in.
	// Default: 9 (UTC+9)
	UTCOffsetHours int `yaml:"utc_offset_hours"`
}

// Location returns the display timezone as a fixed-offset zone.
func (c RetentionConfig) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.UTCOffsetHours), c.UTCOffsetHours*60*60)
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json" or "text".
	// Default: "json"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether the /metrics endpoint is exposed.
	// A pointer so that an explicit false survives defaulting.
	// Default: true
	Enabled *bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "askboard"
	Namespace string `yaml:"namespace"`
}

// IsEnabled reports whether metrics are enabled, treating an unset value as
// the default (true).
func (c MetricsConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}
