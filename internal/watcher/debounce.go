package watcher

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debouncer batches file events: ctags rewrites a tags file with several
// writes in quick succession, and the index should only reload once.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]fsnotify.Op
	interval time.Duration
	timer    *time.Timer
}

// NewDebouncer creates a debouncer with the given interval in milliseconds.
func NewDebouncer(intervalMs int) *Debouncer {
	return &Debouncer{
		pending:  make(map[string]fsnotify.Op),
		interval: time.Duration(intervalMs) * time.Millisecond,
	}
}

// Add records an event for path, combining it with any pending operations.
func (d *Debouncer) Add(path string, op fsnotify.Op) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending[path] |= op
}

// Flush schedules the callback to run with the batched changes once the
// interval has elapsed without further flushes.
func (d *Debouncer) Flush(callback func(changed, removed []string)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		var changed, removed []string
		for path, op := range d.pending {
			if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
				removed = append(removed, path)
			} else if op.Has(fsnotify.Write) || op.Has(fsnotify.Create) {
				changed = append(changed, path)
			}
		}
		d.pending = make(map[string]fsnotify.Op)
		d.mu.Unlock()

		if len(changed) > 0 || len(removed) > 0 {
			callback(changed, removed)
		}
	})
}
