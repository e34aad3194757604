package bounce

import "time"

// Clock is a monotonic high-resolution timer.
type Clock interface {
	// Now returns the current reading in ticks.
	Now() uint64
	// Frequency returns the number of ticks per second.
	Frequency() uint64
}

// MonotonicClock counts nanoseconds since it was created, using the runtime's
// monotonic clock.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a clock whose zero is the current instant.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now implements Clock.
func (c *MonotonicClock) Now() uint64 {
	return uint64(time.Since(c.start))
}

// Frequency implements Clock.
func (c *MonotonicClock) Frequency() uint64 {
	return uint64(time.Second)
}

// ticksToDuration converts a tick count at freq ticks per second.
func ticksToDuration(ticks, freq uint64) time.Duration {
	if freq == uint64(time.Second) {
		return time.Duration(ticks)
	}
	return time.Duration(float64(ticks) / float64(freq) * float64(time.Second))
}
