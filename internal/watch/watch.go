// Package watch re-runs a reload callback whenever a file changes on disk.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// File monitors path and calls reload after each write or create event.
// It runs until ctx is cancelled or the watcher's channels close.
//
// The parent directory is watched rather than the file itself, so a save
// that renames a temp file over path keeps being tracked.
//
// A reload error is logged and the loop keeps watching; the caller's
// previous state stays in effect.
func File(ctx context.Context, path string, reload func() error) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	target := filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	slog.Info("watch: watching for changes", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !shouldReload(event) {
				continue
			}

			if err := reload(); err != nil {
				slog.Error("watch: reload failed — keeping previous state",
					"path", path, "err", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch: watcher error", "path", path, "err", err)
		}
	}
}

// shouldReload reports whether event changes the file's content. A rename
// over the target arrives as Create on the directory watch.
func shouldReload(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
