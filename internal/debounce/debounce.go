// Package debounce provides a single-slot trailing debouncer: rapid calls
// coalesce into one invocation of the most recent function after the delay
// elapses with no further calls.
package debounce

import (
	"sync"
	"time"
)

// MinDelay is the floor for debounce delays; anything lower is clamped.
const MinDelay = 10 * time.Millisecond

// DefaultDelay is used when a non-positive delay is configured.
const DefaultDelay = 300 * time.Millisecond

// Debouncer coalesces bursts of Schedule calls into a single trailing
// invocation. Each Schedule supersedes any pending one; the superseded
// function simply never fires. Safe for concurrent use.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	gen     uint64 // generation counter; a fired timer must match to run
	stopped bool
}

// New creates a debouncer with the given delay, clamped to MinDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if delay < MinDelay {
		delay = MinDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the configured delay.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule arranges for fn to run after the delay, cancelling any pending
// invocation. Only the last call in a burst fires, exactly once. Calls after
// Stop are ignored.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// The timer may have fired while a newer Schedule or Stop was
		// taking the lock; the generation check keeps stale timers inert.
		stale := d.stopped || gen != d.gen
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if !stale {
			fn()
		}
	})
}

// Cancel drops any pending invocation without tearing the debouncer down.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// Stop cancels any pending invocation and rejects future Schedule calls.
// After Stop returns, no scheduled function will run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.stopped = true
}
