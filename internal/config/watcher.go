package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"ghnotify/pkg/logx"
)

// Watcher re-reads the config file when it changes on disk.
//
// Events are debounced because editors emit several writes (or a
// rename+create pair) per save. Content that fails to parse or validate
// is rejected and the previous config stays in effect.
type Watcher struct {
	path string
	log  logx.Logger
}

func NewWatcher(path string, log logx.Logger) *Watcher {
	return &Watcher{path: path, log: log}
}

// Run blocks until ctx is done, invoking onChange with each new valid
// config.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// Watch the directory: editors replace files via rename, which drops
	// a watch placed on the file itself.
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	reload := make(chan struct{}, 1)
	var timer *time.Timer
	debounce := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(250*time.Millisecond, func() {
			select {
			case reload <- struct{}{}:
			default:
			}
		})
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Chmod) != 0 {
				debounce()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("config watcher error", logx.Err(err))
		case <-reload:
			cfg, err := Load(w.path)
			if err != nil {
				w.log.Warn("config reload rejected, keeping previous config", logx.Err(err))
				continue
			}
			w.log.Info("config reloaded", logx.String("path", w.path))
			onChange(cfg)
		}
	}
}
