// Package watcher monitors tags files for changes so the ctags index can
// stay current while an external ctags run rewrites them.
package watcher

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ChangeHandler is called with tags files that were rewritten or removed.
type ChangeHandler func(changed, removed []string)

// Watcher watches an explicit set of tags files using fsnotify. Because
// ctags typically replaces the tags file wholesale, the parent directories
// are watched and events are filtered down to the named files.
type Watcher struct {
	watcher   *fsnotify.Watcher
	paths     map[string]struct{} // cleaned tags file paths
	handler   ChangeHandler
	debouncer *Debouncer
	done      chan struct{}
}

// New creates a watcher over the given tags files.
func New(tagsFiles []string, handler ChangeHandler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	paths := make(map[string]struct{}, len(tagsFiles))
	for _, p := range tagsFiles {
		paths[filepath.Clean(p)] = struct{}{}
	}

	return &Watcher{
		watcher:   fsw,
		paths:     paths,
		handler:   handler,
		debouncer: NewDebouncer(100),
		done:      make(chan struct{}),
	}, nil
}

// Start registers the parent directories and begins dispatching events.
func (w *Watcher) Start() error {
	dirs := make(map[string]struct{})
	for path := range w.paths {
		dirs[filepath.Dir(path)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	go w.eventLoop()

	log.Printf("watching %d tags files", len(w.paths))
	return nil
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := filepath.Clean(event.Name)
	if _, watched := w.paths[path]; !watched {
		return
	}

	w.debouncer.Add(path, event.Op)
	w.debouncer.Flush(func(changed, removed []string) {
		if len(changed) > 0 || len(removed) > 0 {
			log.Printf("tags changes: %d changed, %d removed", len(changed), len(removed))
			w.handler(changed, removed)
		}
	})
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
