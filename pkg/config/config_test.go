package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig tests that defaults form a valid configuration.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := Validate(cfg); err != nil {
		t.Fatalf("DefaultConfig() is invalid: %v", err)
	}

	if cfg.Server.ListenAddress != "127.0.0.1:8000" {
		t.Errorf("Default listen address = %q", cfg.Server.ListenAddress)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Default storage backend = %q", cfg.Storage.Backend)
	}
	if cfg.Retention.Schedule != "0 0 * * *" {
		t.Errorf("Default retention schedule = %q", cfg.Retention.Schedule)
	}
	if cfg.Retention.UTCOffsetHours != 9 {
		t.Errorf("Default UTC offset = %d", cfg.Retention.UTCOffsetHours)
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		t.Error("Default CORS allow-list is empty")
	}
	if !cfg.Telemetry.Metrics.IsEnabled() {
		t.Error("Metrics should be enabled by default")
	}
}

// TestApplyDefaults_IndependentBools tests that defaulting one field never
// changes another, and that an explicit false is preserved.
func TestApplyDefaults_IndependentBools(t *testing.T) {
	// Setting max_age must not affect the credentials default.
	cfg := &Config{}
	cfg.CORS.MaxAge = 60
	ApplyDefaults(cfg)
	if !cfg.CORS.CredentialsAllowed() {
		t.Error("Setting cors.max_age flipped the allow_credentials default")
	}
	if cfg.CORS.MaxAge != 60 {
		t.Errorf("MaxAge = %d, want 60", cfg.CORS.MaxAge)
	}

	// Setting the namespace must not affect the enabled default.
	cfg = &Config{}
	cfg.Telemetry.Metrics.Namespace = "custom"
	ApplyDefaults(cfg)
	if !cfg.Telemetry.Metrics.IsEnabled() {
		t.Error("Setting metrics.namespace flipped the enabled default")
	}
	if cfg.Telemetry.Metrics.Namespace != "custom" {
		t.Errorf("Namespace = %q, want custom", cfg.Telemetry.Metrics.Namespace)
	}

	// An explicit false survives defaulting.
	off := false
	cfg = &Config{}
	cfg.CORS.AllowCredentials = &off
	cfg.Telemetry.Metrics.Enabled = &off
	ApplyDefaults(cfg)
	if cfg.CORS.CredentialsAllowed() {
		t.Error("Explicit allow_credentials=false was overwritten")
	}
	if cfg.Telemetry.Metrics.IsEnabled() {
		t.Error("Explicit metrics.enabled=false was overwritten")
	}
	if cfg.Telemetry.Metrics.Namespace != "askboard" {
		t.Errorf("Namespace default not applied: %q", cfg.Telemetry.Metrics.Namespace)
	}
}

// TestLoadConfig_ExplicitFalseBools tests that yaml false values are not
// re-defaulted to true on load.
func TestLoadConfig_ExplicitFalseBools(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
cors:
  allow_credentials: false
telemetry:
  metrics:
    enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.CORS.CredentialsAllowed() {
		t.Error("allow_credentials: false was not honored")
	}
	if cfg.Telemetry.Metrics.IsEnabled() {
		t.Error("metrics.enabled: false was not honored")
	}
}

// TestRetentionConfig_Location tests the fixed-offset zone construction.
func TestRetentionConfig_Location(t *testing.T) {
	tests := []struct {
		offsetHours int
		wantSeconds int
	}{
		{9, 9 * 60 * 60},
		{0, 0},
		{-5, -5 * 60 * 60},
	}

	for _, tt := range tests {
		loc := RetentionConfig{UTCOffsetHours: tt.offsetHours}.Location()
		_, offset := time.Date(2026, 1, 1, 0, 0, 0, 0, loc).Zone()
		if offset != tt.wantSeconds {
			t.Errorf("Location() for offset %d gave %d seconds, want %d",
				tt.offsetHours, offset, tt.wantSeconds)
		}
	}
}

// TestLoadConfig tests loading from a YAML file.
func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  listen_address: "0.0.0.0:9000"
  shutdown_timeout: 5s
cors:
  allowed_origins:
    - "http://board.example.com"
storage:
  backend: memory
retention:
  utc_offset_hours: 2
telemetry:
  logging:
    level: debug
    format: text
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9000" {
		t.Errorf("ListenAddress = %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.Server.ShutdownTimeout)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://board.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("Storage backend = %q", cfg.Storage.Backend)
	}
	if cfg.Retention.UTCOffsetHours != 2 {
		t.Errorf("UTCOffsetHours = %d", cfg.Retention.UTCOffsetHours)
	}
	if cfg.Telemetry.Logging.Format != "text" {
		t.Errorf("Logging format = %q", cfg.Telemetry.Logging.Format)
	}

	// Unset fields still get defaults
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout default not applied: %v", cfg.Server.ReadTimeout)
	}
	if cfg.Retention.Schedule != "0 0 * * *" {
		t.Errorf("Schedule default not applied: %q", cfg.Retention.Schedule)
	}
}

// TestLoadConfig_MissingFile tests that a missing file yields defaults.
func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() on missing file failed: %v", err)
	}
	if cfg.Server.ListenAddress != "127.0.0.1:8000" {
		t.Errorf("Expected defaults, got listen address %q", cfg.Server.ListenAddress)
	}
}

// TestLoadConfig_MalformedYAML tests parse error reporting.
func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected parse error, got nil")
	}
}

// TestLoadConfigWithEnvOverrides tests environment variable precedence.
func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  listen_address: "127.0.0.1:8000"
storage:
  backend: sqlite
  path: from-file.db
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("ASKBOARD_SERVER_LISTEN_ADDRESS", "0.0.0.0:8080")
	t.Setenv("ASKBOARD_STORAGE_BACKEND", "memory")
	t.Setenv("ASKBOARD_CORS_ALLOWED_ORIGINS", "http://a.example.com, http://b.example.com")
	t.Setenv("ASKBOARD_RETENTION_UTC_OFFSET_HOURS", "0")
	t.Setenv("ASKBOARD_LOG_LEVEL", "warn")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:8080" {
		t.Errorf("Env override ignored, listen address = %q", cfg.Server.ListenAddress)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("Env override ignored, backend = %q", cfg.Storage.Backend)
	}
	want := []string{"http://a.example.com", "http://b.example.com"}
	if len(cfg.CORS.AllowedOrigins) != 2 ||
		cfg.CORS.AllowedOrigins[0] != want[0] || cfg.CORS.AllowedOrigins[1] != want[1] {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.CORS.AllowedOrigins, want)
	}
	if cfg.Retention.UTCOffsetHours != 0 {
		t.Errorf("UTCOffsetHours = %d, want 0", cfg.Retention.UTCOffsetHours)
	}
	if cfg.Telemetry.Logging.Level != "warn" {
		t.Errorf("Log level = %q, want warn", cfg.Telemetry.Logging.Level)
	}
}

// TestValidate tests rejection of invalid configurations.
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"bad listen address", func(cfg *Config) { cfg.Server.ListenAddress = "no-port" }},
		{"empty origins", func(cfg *Config) { cfg.CORS.AllowedOrigins = nil }},
		{"empty origin entry", func(cfg *Config) { cfg.CORS.AllowedOrigins = []string{""} }},
		{"unknown backend", func(cfg *Config) { cfg.Storage.Backend = "postgres" }},
		{"sqlite without path", func(cfg *Config) { cfg.Storage.Path = "" }},
		{"empty schedule", func(cfg *Config) { cfg.Retention.Schedule = "" }},
		{"offset too low", func(cfg *Config) { cfg.Retention.UTCOffsetHours = -13 }},
		{"offset too high", func(cfg *Config) { cfg.Retention.UTCOffsetHours = 15 }},
		{"bad log level", func(cfg *Config) { cfg.Telemetry.Logging.Level = "loud" }},
		{"bad log format", func(cfg *Config) { cfg.Telemetry.Logging.Format = "xml" }},
		{"negative shutdown timeout", func(cfg *Config) { cfg.Server.ShutdownTimeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}
