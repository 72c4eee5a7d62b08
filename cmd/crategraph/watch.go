package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/crategraph/config"
)

// debounceDelay absorbs the burst of write events editors and rustdoc
// produce while replacing a file.
const debounceDelay = 250 * time.Millisecond

// runWatch extracts once, then re-extracts whenever the input file
// changes, until the context is cancelled. Watch mode requires a single
// concrete file since glob batches and crate directories have no stable
// file to observe.
func runWatch(ctx context.Context, logger *slog.Logger, cfg *config.Config, f *flags, input string) error {
	if f.crateDir {
		return fmt.Errorf("--watch cannot be combined with --crate")
	}

	if err := runExtract(ctx, logger, cfg, f, input); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors replace files by
	// rename, which drops a direct file watch.
	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}

	logger.Info("watching for changes", "path", input)

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			logger.Info("input changed, re-extracting", "path", input)
			if err := runExtract(ctx, logger, cfg, f, input); err != nil {
				logger.Error("re-extraction failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}
