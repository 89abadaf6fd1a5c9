package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher hot-reloads configuration when files under the config directory
// change. Intended for development; in other environments it is a no-op
// holder for the initial configuration.
type Watcher struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)

	loader  *Loader
	logger  *zap.Logger
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
}

// debounceDelay coalesces editor save bursts into one reload.
const debounceDelay = 500 * time.Millisecond

// NewWatcher creates a watcher around an already loaded configuration. File
// watching activates only when the hot-reload feature flag is set.
func NewWatcher(initial *Config, loader *Loader, logger *zap.Logger) (*Watcher, error) {
	w := &Watcher{
		config: initial,
		loader: loader,
		logger: logger,
		stopCh: make(chan struct{}),
	}

	if !initial.Features.EnableHotReload {
		logger.Info("configuration hot reload disabled",
			zap.String("environment", string(initial.Environment)))
		return w, nil
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	w.watcher = fsWatcher

	if err := w.watchConfigDir(); err != nil {
		fsWatcher.Close()
		return nil, err
	}
	go w.watchLoop()

	logger.Info("configuration hot reload enabled",
		zap.String("environment", string(initial.Environment)))
	return w, nil
}

// watchConfigDir registers the config directory and its YAML files.
func (w *Watcher) watchConfigDir() error {
	dir := w.loader.basePath
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if info.IsDir() || isConfigFile(path) {
			if err := w.watcher.Add(path); err != nil {
				w.logger.Warn("failed to watch config path",
					zap.String("path", path), zap.Error(err))
			}
		}
		return nil
	})
}

func (w *Watcher) watchLoop() {
	defer w.watcher.Close()

	var debounce *time.Timer
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !isConfigFile(event.Name) {
				continue
			}
			w.logger.Info("configuration file changed",
				zap.String("file", event.Name),
				zap.String("op", event.Op.String()))
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", zap.Error(err))

		case <-w.stopCh:
			return
		}
	}
}

// reload re-runs the loader; an invalid file keeps the previous
// configuration in place.
func (w *Watcher) reload() {
	newConfig, err := w.loader.Load()
	if err != nil {
		w.logger.Error("configuration reload rejected", zap.Error(err))
		return
	}

	w.mu.Lock()
	w.config = newConfig
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, cb := range callbacks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					w.logger.Error("config change callback panicked", zap.Any("panic", r))
				}
			}()
			cb(newConfig)
		}()
	}
	w.logger.Info("configuration reloaded",
		zap.Int("callbacks", len(callbacks)))
}

// OnChange registers a callback invoked after every successful reload.
func (w *Watcher) OnChange(cb func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Current returns the active configuration.
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.config
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() {
	if w.watcher != nil {
		close(w.stopCh)
	}
}

func isConfigFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}
