package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/present/pkg/animation"
)

// DefaultFrameInterval is the simulated frame length used by PumpAndSettle.
const DefaultFrameInterval = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// Harness drives animation time for a test.
type Harness struct {
	clock     *FakeClock
	prevClock animation.Clock
	frames    int
}

// NewHarness installs a fake clock and restores the previous one when the
// test finishes.
func NewHarness(t testing.TB) *Harness {
	h := &Harness{clock: NewFakeClock()}
	h.prevClock = animation.SetClock(h.clock)
	t.Cleanup(h.Cleanup)
	return h
}

// Cleanup restores the animation clock that was active before the harness.
func (h *Harness) Cleanup() {
	if h.prevClock != nil {
		animation.SetClock(h.prevClock)
		h.prevClock = nil
	}
}

// Clock returns the harness clock.
func (h *Harness) Clock() *FakeClock {
	return h.clock
}

// Frames returns how many frames have been pumped.
func (h *Harness) Frames() int {
	return h.frames
}

// Pump advances the clock by d and steps every active ticker once.
func (h *Harness) Pump(d time.Duration) {
	h.clock.Advance(d)
	h.frames++
	animation.StepTickers()
}

// PumpFrames pumps n frames of DefaultFrameInterval each.
func (h *Harness) PumpFrames(n int) {
	for range n {
		h.Pump(DefaultFrameInterval)
	}
}

// PumpAndSettle pumps frames until no ticker is active, or returns
// ErrSettleTimeout once timeout of simulated time has passed.
func (h *Harness) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	// A zero-length step lets freshly started tickers record their start.
	h.Pump(0)
	for animation.HasActiveTickers() {
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
		h.Pump(DefaultFrameInterval)
		elapsed += DefaultFrameInterval
	}
	return nil
}
