package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// watchDebounce coalesces the bursts of events a single save produces.
const watchDebounce = 50 * time.Millisecond

// watchFiles calls search for a path after it settles following a change,
// until ctx is done.
func watchFiles(ctx context.Context, paths []string, search func(path string) error, logger zerolog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return exitError{code: 2, err: fmt.Errorf("watch: %w", err)}
	}
	defer w.Close()

	for _, path := range paths {
		if err := w.Add(path); err != nil {
			return exitError{code: 2, err: fmt.Errorf("watch %s: %w", path, err)}
		}
	}
	logger.Info().Int("files", len(paths)).Msg("watching")

	fire := make(chan string)
	pending := make(map[string]*time.Timer)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			name := ev.Name
			if t, ok := pending[name]; ok {
				t.Reset(watchDebounce)
				continue
			}
			pending[name] = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- name:
				case <-ctx.Done():
				}
			})

		case name := <-fire:
			delete(pending, name)
			// editors that save by rename drop the watch
			_ = w.Add(name)
			if err := search(name); err != nil {
				logger.Warn().Err(err).Str("file", name).Msg("search failed")
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("watch error")
		}
	}
}
