package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for more events before a rerun
const DefaultDebounce = 200 * time.Millisecond

// Watcher reruns a function when source files under a set of roots change
type Watcher struct {
	roots    []string
	ext      string
	debounce time.Duration
	logger   *zap.Logger
}

// NewWatcher creates a new Watcher for files with extension ext under roots
func NewWatcher(roots []string, ext string, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		roots:    roots,
		ext:      "." + strings.TrimPrefix(ext, "."),
		debounce: DefaultDebounce,
		logger:   logger,
	}
}

// SetDebounce overrides the debounce interval
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run calls onChange after every burst of relevant file events until ctx is done.
// Calls never overlap. Roots that do not exist are skipped.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := 0
	for _, root := range w.roots {
		if _, err := os.Stat(root); err != nil {
			w.logger.Debug("not watching missing dir", zap.String("dir", root))
			continue
		}
		if err := w.watchDir(watcher, root); err != nil {
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("none of the test source dirs exist: %s", strings.Join(w.roots, ", "))
	}

	// A stopped timer with a drained channel; armed on every relevant event
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watchDir(watcher, event.Name); err != nil {
						w.logger.Warn("failed to watch new dir", zap.String("dir", event.Name), zap.Error(err))
					}
				}
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change detected", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)
		case <-timer.C:
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Ext(event.Name) == w.ext
}

// watchDir recursively adds a directory to the watcher.
func (w *Watcher) watchDir(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
