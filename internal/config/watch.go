package config

import (
	"context"
	"log/slog"

	"github.com/gradebook/gradebook/internal/watch"
)

// Watch monitors path for changes and calls onChange with the newly loaded
// Config each time the file is written. It runs until ctx is cancelled.
//
// If a reload fails (e.g., invalid YAML or weights that no longer sum to 1),
// the error is logged and onChange is not called.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	return watch.File(ctx, path, func() error {
		cfg, err := Load(path)
		if err != nil {
			return err
		}
		slog.Info("config: reloaded", "path", path)
		onChange(cfg)
		return nil
	})
}
