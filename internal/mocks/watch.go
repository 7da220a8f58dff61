package mocks

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchFixtures reloads the fixture file at path whenever it changes on disk
// and hands every valid set to apply. Invalid files are logged and skipped so
// the previous set stays in use. It blocks until ctx is cancelled.
func WatchFixtures(ctx context.Context, path string, apply func(context.Context, *FixtureSet) error) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve fixture path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors and config mounts replace files by rename, so the directory is
	// watched rather than the file itself.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch fixture directory: %w", err)
	}

	slog.InfoContext(ctx, "Watching fixture file", "path", absPath)

	for {
		select {
		case <-ctx.Done():
			slog.DebugContext(ctx, "Stopping fixture watcher", "path", absPath)
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher event channel closed")
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			set, err := LoadFixtures(absPath)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to reload fixtures, keeping previous set", "path", absPath, "error", err)
				continue
			}
			if err := apply(ctx, set); err != nil {
				slog.ErrorContext(ctx, "Failed to apply reloaded fixtures", "path", absPath, "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			slog.ErrorContext(ctx, "Fixture watcher error", "error", err)
		}
	}
}
