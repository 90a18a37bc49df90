package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// watch checks files once and again after every change until ctx is done.
// Directories are watched rather than files so editors that save by renaming
// a temporary file are still seen.
func (a *app) watch(ctx context.Context, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()

	targets := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return errors.Wrapf(err, "resolve %s", file)
		}

		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "watch %s", dir)
		}
	}

	a.logger.Info("watching", "files", len(files), "debounce", a.cfg.Debounce())
	a.recheck(files)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("stopped watching")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil || !targets[abs] {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			a.logger.Debug("file changed", "file", event.Name, "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(a.cfg.Debounce())
			} else {
				// Drop a tick that fired but was never received, or Reset
				// would leave it in the channel and recheck early
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(a.cfg.Debounce())
			}
			fire = timer.C

		case <-fire:
			fire = nil
			a.recheck(files)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			a.logger.Error("watcher error", "error", err)
		}
	}
}

func (a *app) recheck(files []string) {
	fmt.Fprintln(a.stdout, a.styles.muted.Render("== "+time.Now().Format(time.TimeOnly)))

	if err := a.checkFiles(files); err != nil && !errors.Is(err, errFailed) {
		// The file may be mid-save; the next event checks it again
		a.logger.Warn("check failed", "error", err)
	}
}
