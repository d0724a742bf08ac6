// Package debounce delays an action until its trigger has stopped firing for a fixed interval.
package debounce

import (
	"sync"
	"time"

	"golden-key-funnel/internal/pkg/clock"
)

// Debouncer runs only the most recently scheduled function. Scheduling again
// before the delay elapses stops the earlier timer.
type Debouncer struct {
	mu       sync.Mutex
	clock    clock.Clock
	timer    clock.Timer
	duration time.Duration
	seq      uint64
}

func New(clk clock.Clock, duration time.Duration) *Debouncer {
	return &Debouncer{
		clock:    clk,
		duration: duration,
	}
}

// Debounce executes fn after the debounce duration has elapsed without any new calls.
func (d *Debouncer) Debounce(fn func()) {
	d.schedule(d.duration, fn)
}

// Immediate cancels any pending call and executes fn on the calling goroutine.
func (d *Debouncer) Immediate(fn func()) {
	d.Cancel()
	fn()
}

func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) Duration() time.Duration {
	return d.duration
}

func (d *Debouncer) schedule(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.timer = d.clock.AfterFunc(delay, func() {
		// A timer that already fired cannot be stopped; the sequence check drops it.
		d.mu.Lock()
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}
