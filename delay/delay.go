// Package delay implements a non-blocking timeout for polling loops.
//
// A Timer is armed with [Timer.Delay] and polled with [Timer.Timeout], so a
// loop can keep refreshing a display while it waits. Deadlines are kept on the
// monotonic clock and do not wrap around.
package delay

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Timer is a non-blocking deadline. The zero value uses the system clock and
// has already timed out.
type Timer struct {
	clock    clock.Clock
	deadline time.Time
}

// New returns a timer on the given clock, nil selects the system clock.
func New(c clock.Clock) *Timer {
	return &Timer{clock: c}
}

func (t *Timer) now() time.Time {
	if t.clock == nil {
		t.clock = clock.New()
	}
	return t.clock.Now()
}

// Delay arms the timer to expire d from now.
func (t *Timer) Delay(d time.Duration) {
	t.deadline = t.now().Add(d)
}

// Timeout reports if the deadline has passed.
func (t *Timer) Timeout() bool {
	return t.now().After(t.deadline)
}

// Deadline is the time at which the timer expires.
func (t *Timer) Deadline() time.Time {
	return t.deadline
}
