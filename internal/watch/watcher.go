// Package watch re-runs a callback when watched input files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/hexwords/pkg/log"
)

// DefaultDebounce is used when Config.Debounce is not positive.
const DefaultDebounce = 100 * time.Millisecond

// Config holds watcher options.
type Config struct {
	// Debounce is how long to wait after the last change before firing.
	Debounce time.Duration
	Logger   log.Logger
}

// Watcher watches a fixed set of files. Editors often replace files instead
// of writing them in place, so the parent directories are watched and
// events are filtered by path.
type Watcher struct {
	debounce time.Duration
	logger   log.Logger
}

// New creates a Watcher.
func New(cfg Config) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}
	return &Watcher{debounce: cfg.Debounce, logger: cfg.Logger}
}

// Run blocks until ctx is done, calling onChange on the calling goroutine
// once per burst of Write or Create events on any of paths.
func (w *Watcher) Run(ctx context.Context, paths []string, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	w.logger.Info("watching inputs", log.Int("files", len(targets)), log.Int("dirs", len(dirs)))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !targets[name] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("input changed", log.String("input", name), log.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case <-timer.C:
			onChange()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}
