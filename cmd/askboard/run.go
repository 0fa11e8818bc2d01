package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"askboard-hq/askboard/pkg/config"
	"askboard-hq/askboard/pkg/question/storage"
	"askboard-hq/askboard/pkg/server"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the question board server",
	Long: `Start the question board server with the specified configuration.

The server wipes the board on startup, arms a daily midnight expiry in the
display timezone, and then serves the question API.

Examples:
  # Start with default config
  askboard run

  # Start with custom config
  askboard run --config /etc/askboard/config.yaml

  # Override listen address
  askboard run --listen 0.0.0.0:8000

  # Validate config without starting server
  askboard run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	setupLogging(cfg)

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	fmt.Printf("Askboard v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")

	store, err := buildStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}
	defer store.Close()
	fmt.Printf("✓ Storage initialized (%s)\n", cfg.Storage.Backend)

	srv := server.NewServer(cfg, store)

	// Watch the config file so the CORS allow-list can change without a
	// restart. Everything else requires one.
	watcher, err := config.NewWatcher(cfgFile, slog.Default())
	if err != nil {
		slog.Warn("config watcher unavailable", "error", err)
	} else {
		if err := watcher.Start(func(updated *config.Config) {
			srv.SetAllowedOrigins(updated.CORS.AllowedOrigins)
		}); err != nil {
			slog.Warn("failed to start config watcher", "error", err)
		} else {
			defer watcher.Stop()
		}
	}

	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/health\n", cfg.Server.ListenAddress)
	if cfg.Telemetry.Metrics.IsEnabled() {
		fmt.Printf("✓ Metrics endpoint: http://%s/metrics\n", cfg.Server.ListenAddress)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	return srv.Start(context.Background())
}

func setupLogging(cfg *config.Config) {
	var logLevel slog.Level
	switch cfg.Telemetry.Logging.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if cfg.Telemetry.Logging.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func buildStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return storage.NewSQLiteStorage(&storage.SQLiteConfig{
			Path:        cfg.Storage.Path,
			BusyTimeout: cfg.Storage.BusyTimeout,
		})
	case "memory":
		return storage.NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}
