// Package debounce provides a trailing-edge debouncer: a burst of calls
// collapses into one invocation after the burst goes quiet.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs the most recent function passed to Do once no new call has
// arrived for the configured interval. Earlier pending calls are dropped.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Debouncer with the given quiet interval.
func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Do schedules fn to run after the quiet interval, replacing any previously
// scheduled function. fn runs on a timer goroutine.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending invocation. A stopped debouncer remains usable.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush runs any pending invocation immediately instead of waiting out the
// interval. It is primarily useful in tests and on shutdown.
func (d *Debouncer) Flush(fn func()) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	fn()
}
