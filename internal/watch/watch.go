// Package watch re-runs a job whenever its configuration file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Config holds watcher options.
type Config struct {
	// DebounceDelay is the quiet period after the last write before re-running.
	// Default: 100 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with the default debounce.
func DefaultConfig() Config {
	return Config{DebounceDelay: 100 * time.Millisecond}
}

// Job is one run triggered by the watcher.
type Job func(ctx context.Context) error

// Run calls job once, then again after every debounced write to path, until
// ctx is done. The parent directory is watched so editors that replace the
// file are still seen. Job errors are logged and do not stop the loop.
func Run(ctx context.Context, path string, cfg Config, log zerolog.Logger, job Job) error {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultConfig().DebounceDelay
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch: add %s: %w", filepath.Dir(target), err)
	}

	runJob(ctx, log, job)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(cfg.DebounceDelay)
			} else {
				timer.Reset(cfg.DebounceDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			log.Info().Str("path", target).Msg("config changed, re-running")
			runJob(ctx, log, job)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}

func runJob(ctx context.Context, log zerolog.Logger, job Job) {
	if err := job(ctx); err != nil {
		log.Error().Err(err).Msg("run failed")
	}
}
