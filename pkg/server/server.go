package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"askboard-hq/askboard/pkg/api/handlers"
	"askboard-hq/askboard/pkg/api/middleware"
	"askboard-hq/askboard/pkg/config"
	"askboard-hq/askboard/pkg/question/retention"
	"askboard-hq/askboard/pkg/question/storage"
	"askboard-hq/askboard/pkg/telemetry/metrics"
)

// Server is the HTTP server for the question board.
type Server struct {
	config     *config.Config
	storage    storage.Storage
	pruner     *retention.Pruner
	scheduler  *retention.Scheduler
	collector  *metrics.Collector
	corsConfig *middleware.CORSConfig

	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool

	// now supplies the observation instant for the opportunistic
	// retention guard. Tests override it to cross day boundaries.
	now func() time.Time
}

// schemaResetter is the optional defensive startup-reset contract: drop and
// recreate the schema instead of only deleting rows.
type schemaResetter interface {
	Reset(ctx context.Context) error
}

// NewServer creates a new board server around the given store.
func NewServer(cfg *config.Config, store storage.Storage) *Server {
	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.IsEnabled() {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	pruner := retention.NewPruner(store, cfg.Retention.Location())
	scheduler := retention.NewScheduler(pruner, cfg.Retention.Schedule)
	scheduler.OnResult = func(deleted int64, err error) {
		collector.RecordPrune(metrics.TriggerSchedule, deleted, err)
	}

	return &Server{
		config:    cfg,
		storage:   store,
		pruner:    pruner,
		scheduler: scheduler,
		collector: collector,
		corsConfig: middleware.NewCORSConfig(
			cfg.CORS.AllowedOrigins,
			cfg.CORS.CredentialsAllowed(),
			cfg.CORS.MaxAge,
		),
		shutdownChan: make(chan struct{}),
		now:          time.Now,
	}
}

// Start resets the store, arms the daily retention job, and serves HTTP
// until shutdown. It blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	// Resetting: every fresh process starts from an empty board,
	// independent of the cutoff logic. Failure here is fatal.
	if err := s.resetStore(ctx); err != nil {
		return fmt.Errorf("startup wipe failed: %w", err)
	}

	// Scheduled: arm the daily trigger before accepting requests.
	if err := s.scheduler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start retention scheduler: %w", err)
	}

	handler := s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         s.config.Server.ListenAddress,
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting board server",
			"address", s.config.Server.ListenAddress,
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		slog.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// resetStore performs the one-time startup wipe.
func (s *Server) resetStore(ctx context.Context) error {
	if s.config.Storage.ResetSchema {
		if resetter, ok := s.storage.(schemaResetter); ok {
			slog.Info("startup reset: dropping and recreating schema")
			err := resetter.Reset(ctx)
			s.collector.RecordPrune(metrics.TriggerStartup, 0, err)
			return err
		}
	}

	deleted, err := s.storage.DeleteAll(ctx)
	s.collector.RecordPrune(metrics.TriggerStartup, deleted, err)
	if err != nil {
		return err
	}

	slog.Info("startup wipe completed", "deleted_count", deleted)
	return nil
}

// Shutdown gracefully shuts down the server: the daily timer is cancelled
// without waiting for an in-flight firing, then the HTTP listener drains.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		slog.Info("initiating graceful shutdown",
			"timeout", s.config.Server.ShutdownTimeout.String(),
		)

		// ShuttingDown: no new scheduled firing may start past this point.
		s.scheduler.Stop()

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("board server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/health", handlers.NewHealthHandler())
	mux.Handle("/questions", handlers.NewQuestionsHandler(s.storage, s.collector))
	mux.Handle("/questions/{id}", handlers.NewQuestionHandler(s.storage))

	if s.collector != nil {
		mux.Handle("/metrics", s.collector.Handler())
	}

	var handler http.Handler = mux

	// Retention guard first so pruning executes-before every /questions
	// operation.
	handler = middleware.RetentionGuard(s.pruner, s.now, s.collector)(handler)

	handler = middleware.CORSMiddleware(s.corsConfig)(handler)

	handler = middleware.MetricsMiddleware(s.collector)(handler)

	handler = middleware.LoggingMiddleware(handler)

	handler = middleware.RequestIDMiddleware(handler)

	// Recovery middleware (outermost)
	handler = middleware.RecoveryMiddleware(handler)

	return handler
}

// SetAllowedOrigins replaces the CORS origin allow-list at runtime. Called
// by the config watcher on reload.
func (s *Server) SetAllowedOrigins(origins []string) {
	s.corsConfig.SetAllowedOrigins(origins)
	slog.Info("CORS allow-list updated", "origins", origins)
}

// IsRunning returns true if the server is serving.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler without starting the
// listener. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// Scheduler exposes the retention scheduler for lifecycle introspection.
func (s *Server) Scheduler() *retention.Scheduler {
	return s.scheduler
}
