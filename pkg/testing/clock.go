package testing

import (
	"sync/atomic"
	"time"
)

// Epoch is the time every FakeClock starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is an animation.Clock that only moves when told to. It is safe
// for concurrent use.
type FakeClock struct {
	// offset is nanoseconds since Epoch.
	offset atomic.Int64
}

// NewFakeClock returns a clock reading Epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	return Epoch.Add(time.Duration(c.offset.Load()))
}

// Advance moves the clock forward by d and returns the new time.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	return Epoch.Add(time.Duration(c.offset.Add(int64(d))))
}

// Set moves the clock to t, which may be before the current time.
func (c *FakeClock) Set(t time.Time) {
	c.offset.Store(int64(t.Sub(Epoch)))
}

// Since returns how far the clock has moved from Epoch.
func (c *FakeClock) Since() time.Duration {
	return time.Duration(c.offset.Load())
}
