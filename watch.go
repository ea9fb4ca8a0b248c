package clampgen

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig configures Watch.
type WatchConfig struct {
	Paths    []string      // Files whose changes trigger a run (e.g. .clampgen.yaml)
	Debounce time.Duration // 0 = DefaultDebounceDuration
	OnError  func(error)   // Called with errors from onChange; nil ignores them
}

// Watch calls onChange whenever one of the watched files is written, created
// or renamed into place, until ctx is done. Parent directories are watched
// rather than the files themselves so that atomic saves (write to temp,
// rename) are still seen.
//
// onChange always runs on the calling goroutine. Changes seen while it runs
// are debounced into one more call after it returns.
func Watch(ctx context.Context, config WatchConfig, onChange func() error) error {
	if len(config.Paths) == 0 {
		return errors.New("watch: no paths given")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]bool, len(config.Paths))
	dirs := make(map[string]bool)
	for _, p := range config.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	debouncer := NewDebouncer(config.Debounce)
	defer debouncer.Cancel()

	// The debounce timer only signals the loop below.
	fire := make(chan struct{}, 1)
	notify := func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-fire:
			if err := onChange(); err != nil && config.OnError != nil {
				config.OnError(err)
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !targets[name] {
				continue
			}
			debouncer.Trigger(notify)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if config.OnError != nil {
				config.OnError(fmt.Errorf("watch: %w", err))
			}
		}
	}
}
