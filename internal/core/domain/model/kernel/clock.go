package kernel

import "time"

// Clock is the current-time capability used wherever the model needs "now",
// most notably the DateTime rule that rejects future instants. Injecting the
// clock keeps that rule deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. This is the production implementation.
type SystemClock struct{}

// NewSystemClock creates the production clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. It exists so tests can pin
// "now" and exercise the no-future-dates rule deterministically.
type FixedClock struct {
	now time.Time
}

// NewFixedClock creates a clock frozen at the given instant.
func NewFixedClock(now time.Time) FixedClock {
	return FixedClock{now: now}
}

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return c.now
}
