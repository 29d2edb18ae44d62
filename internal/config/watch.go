package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

// Update carries the result of reloading the settings file.
type Update struct {
	Settings Settings
	Err      error
}

// Watcher reloads the settings file whenever it changes on disk.
//
// The parent directory is watched rather than the file, so that editors that
// save through rename are still observed.
type Watcher struct {
	path     string
	name     string
	debounce time.Duration
	logger   *slog.Logger
}

// NewWatcher creates a watcher for the settings file at path.
func NewWatcher(path string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Watcher{
		path:     path,
		name:     filepath.Base(path),
		debounce: DefaultDebounce,
		logger:   logger,
	}
}

// WithDebounce overrides DefaultDebounce.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// matches reports whether an event path names the settings file. Names are
// compared literally; a settings file called "[dev].toml" is not a pattern.
func (w *Watcher) matches(name string) bool {
	return filepath.Base(name) == w.name
}

// Start begins watching. The returned channel is closed when ctx is done.
func (w *Watcher) Start(ctx context.Context) (<-chan Update, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	out := make(chan Update, 1)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		defer fsw.Close()
		return w.run(ctx, fsw, out)
	}, lifecycle.WithErrorHandler(func(err error) {
		w.logger.Error("settings watcher stopped", "error", err)
	}))

	w.logger.Debug("settings watcher started", "path", w.path)
	return out, nil
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, out chan<- Update) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.matches(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("settings event", "name", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Warn("settings reload failed", "error", err)
			} else {
				w.logger.Info("settings reloaded", "path", w.path)
			}
			select {
			case out <- Update{Settings: cfg, Err: err}:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("fsnotify error", "error", err)
		}
	}
}
