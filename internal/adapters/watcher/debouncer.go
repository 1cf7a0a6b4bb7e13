// Package watcher turns file system events into change notifications for
// classpath roots and workspace files.
package watcher

import (
	"slices"
	"sync"
	"time"
	"unique"
)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer coalesces rapid file system events into batches of changed paths.
// Batches are handed to the callback one at a time, in the order their windows closed.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)

	queue    [][]string
	running  bool
	inflight sync.WaitGroup // armed timers and the delivery goroutine
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records a changed path and restarts the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}

	d.stopTimer()
	d.inflight.Add(1)
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	defer d.inflight.Done()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.enqueue(d.drain())
}

// Flush immediately delivers all pending paths and blocks until every batch
// handed to the callback so far has returned.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	d.stopTimer()
	d.enqueue(d.drain())
	d.mu.Unlock()

	d.inflight.Wait()
}

// stopTimer cancels the armed timer. A timer that already fired releases
// itself in fire. Callers must hold d.mu.
func (d *Debouncer) stopTimer() {
	if d.timer == nil {
		return
	}
	if d.timer.Stop() {
		d.inflight.Done()
	}
	d.timer = nil
}

// enqueue queues a batch and starts the delivery goroutine unless it is
// already running. Callers must hold d.mu.
func (d *Debouncer) enqueue(paths []string) {
	if len(paths) == 0 || d.callback == nil {
		return
	}

	d.queue = append(d.queue, paths)
	if d.running {
		return
	}
	d.running = true
	d.inflight.Add(1)
	go d.deliver()
}

func (d *Debouncer) deliver() {
	defer d.inflight.Done()

	for {
		d.mu.Lock()
		if len(d.queue) == 0 {
			d.running = false
			d.mu.Unlock()
			return
		}
		paths := d.queue[0]
		d.queue = d.queue[1:]
		d.mu.Unlock()

		d.callback(paths)
	}
}

// drain empties the pending set. Callers must hold d.mu.
func (d *Debouncer) drain() []string {
	if len(d.pending) == 0 {
		return nil
	}

	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	d.pending = make(map[unique.Handle[string]]struct{})
	slices.Sort(paths)

	return paths
}
