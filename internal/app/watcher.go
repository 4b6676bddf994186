package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mwrend/lotview/internal/dataset"
	"github.com/mwrend/lotview/internal/state"
)

// debounceDelay coalesces the burst of events an editor or exporter emits
// while rewriting the dataset file, so each save triggers one reload.
const debounceDelay = 250 * time.Millisecond

// StartWatcher launches a background goroutine that reloads the dataset
// whenever its file changes. It returns immediately; the watcher shuts
// down when ctx is cancelled.
//
// The parent directory is watched rather than the file itself because most
// tools replace files on save (write temp, rename over), which would
// otherwise orphan a file-level watch.
func StartWatcher(ctx context.Context, store *state.Store, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		var pending *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if pending == nil {
					pending = time.NewTimer(debounceDelay)
					fire = pending.C
				} else {
					pending.Reset(debounceDelay)
				}

			case <-fire:
				pending = nil
				fire = nil
				reload(store, abs)

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Watch errors are transient; the manual reload key still works.
			}
		}
	}()

	return nil
}

// reload loads the dataset and publishes it atomically. On failure the
// store keeps the previous dataset and records the error.
func reload(store *state.Store, path string) {
	ds, err := dataset.Load(path)
	store.Update(ds, err)
}
