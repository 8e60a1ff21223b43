// Package debounce collapses rapid repeated input into a single delayed
// delivery, so an interactive search does not fire one request per keystroke.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay matches the search input's 300ms settle window.
const DefaultDelay = 300 * time.Millisecond

// Debouncer delivers the most recent triggered value to fn once the delay
// has elapsed with no further triggers. Each Trigger restarts the window.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool

	// held for the whole of a delivery, so Stop can wait one out
	deliverMu sync.Mutex
}

// New creates a debouncer. A non-positive delay falls back to DefaultDelay.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Trigger records a new value and restarts the delay window. Only the final
// value before a pause is ever delivered.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.deliverMu.Lock()
		defer d.deliverMu.Unlock()

		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if stopped {
			return
		}
		d.fn(v)
	})
}

// Stop cancels any pending delivery. No value fires after Stop returns, so a
// torn-down view cannot receive a stale query. A delivery already past the
// stopped check is waited out, which means Stop must not be called from
// inside fn.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	// barrier: returns only once any in-flight delivery has finished
	d.deliverMu.Lock()
	d.deliverMu.Unlock()
}
