// Package animation provides the timing primitives behind presentation
// transitions.
//
// # Core Components
//
//   - [PropertyAnimator]: a resumable, scrubbable, cancelable animation. It can
//     run on its own, be paused and driven by a gesture through
//     SetFractionComplete, reversed, and stopped without finishing.
//
//   - [Tween]: interpolates between begin and end values of any type.
//
//   - Curves: easing functions such as [EaseOut] and [CubicBezier], plus
//     [SpringDescription.Curve] for damped springs that carry gesture velocity.
//
//   - [Ticker]: the frame callback primitive. Tickers are stepped by the host's
//     frame loop via [StepTickers]; nothing in this package starts goroutines.
//
// All animator callbacks run on whichever goroutine calls [StepTickers], which
// must be the single goroutine that owns the presentation state.
package animation

import (
	"sync"
	"time"
)

// tickerSet holds running tickers in start order.
type tickerSet struct {
	mu      sync.Mutex
	running []*Ticker
}

var tickers = &tickerSet{}

func (s *tickerSet) add(t *Ticker) {
	s.mu.Lock()
	s.running = append(s.running, t)
	s.mu.Unlock()
}

func (s *tickerSet) remove(t *Ticker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.running {
		if r == t {
			s.running = append(s.running[:i], s.running[i+1:]...)
			return
		}
	}
}

// snapshot copies the set so callbacks may start and stop tickers.
func (s *tickerSet) snapshot() []*Ticker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Ticker(nil), s.running...)
}

func (s *tickerSet) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.running)
}

// Ticker calls its callback once per stepped frame while running, passing
// the time since Start.
type Ticker struct {
	onTick  func(elapsed time.Duration)
	running bool
	started time.Time
}

// NewTicker returns a stopped ticker.
func NewTicker(onTick func(elapsed time.Duration)) *Ticker {
	return &Ticker{onTick: onTick}
}

// Start records the start time and joins the next step. It does nothing
// if t is already running.
func (t *Ticker) Start() {
	if t.running {
		return
	}
	t.running = true
	t.started = Now()
	tickers.add(t)
}

// Stop leaves the stepped set. It does nothing if t is not running.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	tickers.remove(t)
}

// IsActive reports whether t is running.
func (t *Ticker) IsActive() bool {
	return t.running
}

// StepTickers calls every running ticker once with the clock's current
// time. The host calls it once per frame. A ticker started from inside a
// callback is first called on the following step; one stopped from inside
// a callback is not called again.
func StepTickers() {
	running := tickers.snapshot()
	if len(running) == 0 {
		return
	}
	now := Now()
	for _, t := range running {
		if t.running && t.onTick != nil {
			t.onTick(now.Sub(t.started))
		}
	}
}

// HasActiveTickers reports whether any ticker is running.
func HasActiveTickers() bool {
	return tickers.len() > 0
}
