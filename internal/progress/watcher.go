package progress

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thruflo/onboard/internal/logging"
)

// DefaultDebounce coalesces bursts of file events from a single write.
const DefaultDebounce = 100 * time.Millisecond

// Reloader re-reads persisted progress.
type Reloader interface {
	Reload(ctx context.Context) (bool, error)
}

// Watcher reloads a Store when its backing file is changed by another
// process, such as a second onboard command run in another shell.
type Watcher struct {
	watcher  *fsnotify.Watcher
	target   string
	reloader Reloader
	debounce time.Duration
	log      *logging.Logger
}

// NewWatcher watches the directory holding path and reloads r when path, or
// a sqlite sidecar of it, changes.
func NewWatcher(path string, r Reloader) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watcher requires a file-backed store")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		watcher:  fw,
		target:   filepath.Clean(path),
		reloader: r,
		debounce: DefaultDebounce,
		log:      logging.With("component", "watcher"),
	}, nil
}

// SetDebounce changes the quiet period before a reload. Call before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// matches reports whether an event path refers to the watched file.
func (w *Watcher) matches(name string) bool {
	name = filepath.Clean(name)
	if name == w.target {
		return true
	}
	// sqlite writes through name-wal and name-journal
	return strings.HasPrefix(name, w.target+"-")
}

// Run processes file events until ctx is cancelled. It closes the
// underlying watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	// The timer stays stopped until the first matching event arrives.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.matches(ev.Name) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("file watcher error", "error", err)

		case <-timer.C:
			changed, err := w.reloader.Reload(ctx)
			if err != nil {
				w.log.Warn("reload after file change failed", "path", w.target, "error", err)
				continue
			}
			w.log.Debug("reloaded progress after file change", "path", w.target, "changed", changed)
		}
	}
}
