package animation

import (
	"sync"
	"time"
)

// Clock provides time for animators and tickers. The default implementation
// uses system time. Tests inject a fake clock via SetClock to drive
// animations deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var (
	clockMu sync.RWMutex
	clock   Clock = systemClock{}
)

// SetClock replaces the animation clock and returns the previous one so
// callers can restore it during cleanup. Passing nil restores system time.
func SetClock(c Clock) Clock {
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	if c == nil {
		c = systemClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time {
	clockMu.RLock()
	c := clock
	clockMu.RUnlock()
	return c.Now()
}
