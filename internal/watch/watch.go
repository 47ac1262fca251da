// Package watch reruns a callback whenever a catalog file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher observes a single catalog file. The parent directory is watched
// so editors that save by rename are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// New starts watching path. Close must be called to release the watcher.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: filepath.Clean(abs), debounce: debounce, fsw: fsw}, nil
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run calls onChange once per burst of changes to the file, until ctx is
// done or the watcher reports an error.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug().Str("file", w.path).Str("op", event.Op.String()).Msg("Catalog changed")
			timer.Reset(w.debounce)
			pending = true
		case <-timer.C:
			if pending {
				pending = false
				onChange()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.path, err)
		}
	}
}
