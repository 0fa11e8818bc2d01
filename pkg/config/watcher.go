package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the configuration file for changes and triggers reloads.
// It debounces events to prevent reload storms when editors write files in
// multiple steps.
//
// Only runtime-adjustable settings are applied on reload (currently the
// CORS origin allow-list); listen address, storage, and retention schedule
// changes require a restart.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	timer   *time.Timer
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// DefaultDebounceInterval is the time to wait after a change event before
// reloading.
const DefaultDebounceInterval = 100 * time.Millisecond

// NewWatcher creates a new configuration file watcher.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:  fw,
		path:     path,
		debounce: DefaultDebounceInterval,
		logger:   logger.With("component", "config.watcher"),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching and invokes onReload with the freshly loaded
// configuration after each (debounced) change. Reload failures are logged
// and the previous configuration stays in effect.
func (w *Watcher) Start(onReload func(*Config)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory: editors replace files instead of writing in
	// place, which would otherwise drop the watch.
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.logger.Info("config watcher started",
		"path", w.path,
		"debounce_ms", w.debounce.Milliseconds(),
	)

	go w.loop(onReload)
	return nil
}

func (w *Watcher) loop(onReload func(*Config)) {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			w.logger.Info("config watcher stopped")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.scheduleReload(onReload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", "error", err)
		}
	}
}

// scheduleReload (re)arms the debounce timer.
func (w *Watcher) scheduleReload(onReload func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		cfg, err := LoadConfigWithEnvOverrides(w.path)
		if err != nil {
			w.logger.Error("config reload failed, keeping previous configuration", "error", err)
			return
		}

		w.logger.Info("configuration reloaded", "path", w.path)
		onReload(cfg)
	})
}

// Stop stops the watcher and releases the underlying fsnotify resources.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.stopCh)
	w.watcher.Close()
	<-w.doneCh
}
