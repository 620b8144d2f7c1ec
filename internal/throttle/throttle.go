// Package throttle provides a rate limiter that runs an action on the leading
// edge of a burst and once more on the trailing edge.
package throttle

import (
	"sync"
	"time"
)

// Throttle runs fn immediately on the first Trigger, then suppresses further
// triggers until the cooldown elapses. If any trigger arrived during the
// cooldown, fn runs once when it ends and a new cooldown starts.
// At most one call is ever pending.
type Throttle struct {
	mu      sync.Mutex
	wait    time.Duration
	fn      func()
	timer   *time.Timer
	cooling bool
	pending bool
	stopped bool
}

// New creates a throttle around fn with the given cooldown.
func New(wait time.Duration, fn func()) *Throttle {
	return &Throttle{
		wait: wait,
		fn:   fn,
	}
}

// Trigger requests an execution of fn.
func (t *Throttle) Trigger() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	if t.cooling {
		t.pending = true
		t.mu.Unlock()
		return
	}
	t.cooling = true
	t.timer = time.AfterFunc(t.wait, t.expire)
	t.mu.Unlock()

	t.fn()
}

func (t *Throttle) expire() {
	t.mu.Lock()
	if t.stopped || !t.pending {
		t.cooling = false
		t.timer = nil
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.timer = time.AfterFunc(t.wait, t.expire)
	t.mu.Unlock()

	t.fn()
}

// Pending reports whether a trailing call is waiting for the cooldown to end.
func (t *Throttle) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Flush runs the pending trailing call now instead of at the end of the cooldown.
func (t *Throttle) Flush() {
	t.mu.Lock()
	if t.stopped || !t.pending {
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.mu.Unlock()

	t.fn()
}

// Stop drops any pending call and disables the throttle.
func (t *Throttle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	t.pending = false
	t.cooling = false
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
