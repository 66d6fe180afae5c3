// Package debounce provides a trailing debounce with a single pending task.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs fn once a quiet period of delay has elapsed since the last Trigger.
// Re-triggering cancels and replaces the pending run, so only the latest one ever fires.
// Runs never overlap: a run that comes due while another is in progress waits for it,
// and is dropped if a newer Trigger, Flush or Cancel supersedes it meanwhile.
type Debouncer struct {
	delay time.Duration
	fn    func()

	mu      sync.Mutex
	idle    *sync.Cond
	timer   *time.Timer
	gen     uint64
	pending bool
	running bool
}

// New creates a Debouncer that calls fn after delay.
func New(delay time.Duration, fn func()) *Debouncer {
	d := &Debouncer{delay: delay, fn: fn}
	d.idle = sync.NewCond(&d.mu)
	return d
}

// Trigger arms the timer, replacing any pending run.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = true
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
	d.idle.Broadcast()
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	for d.running && gen == d.gen {
		d.idle.Wait()
	}
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.running = true
	d.mu.Unlock()

	defer d.finish()
	d.fn()
}

// Flush runs the pending task now, on the calling goroutine, and reports whether
// there was one. A run already in progress is waited for first.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	for d.running {
		d.idle.Wait()
	}
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	d.cancelLocked()
	d.running = true
	d.mu.Unlock()

	defer d.finish()
	d.fn()
	return true
}

func (d *Debouncer) finish() {
	d.mu.Lock()
	d.running = false
	d.idle.Broadcast()
	d.mu.Unlock()
}

// Cancel drops the pending task without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.pending = false
	// wake runs waiting on a generation that no longer exists
	d.idle.Broadcast()
}

// Pending reports whether a run is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Wait blocks until the run in progress, if any, has returned.
func (d *Debouncer) Wait() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for d.running {
		d.idle.Wait()
	}
}
