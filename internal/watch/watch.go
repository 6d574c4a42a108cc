// Package watch triggers rebuilds when the library source tree changes.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// relevant is the event mask that invalidates a previous build.
const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Dir watches dir (recursively) and calls fn after each burst of changes,
// debounced so an editor save or git checkout fires one rebuild, not
// dozens. It blocks until ctx is done or the watcher fails. Directories
// created while watching are added to the watch set.
func Dir(ctx context.Context, dir string, debounce time.Duration, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addTree(w, dir); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				// Best effort: the path may be gone already.
				addTree(w, ev.Name)
			}
			if ev.Op&relevant == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				timer.Reset(debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		case <-fire:
			timer = nil
			fire = nil
			fn()
		}
	}
}

// addTree registers path and every directory below it. Non-directories
// and vanished paths are silently skipped.
func addTree(w *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		return w.Add(p)
	})
}
