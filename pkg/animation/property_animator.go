package animation

import (
	"fmt"
	"time"
)

// AnimatorState represents the lifecycle of a [PropertyAnimator].
//
//	             Start / Pause / SetFractionComplete
//	Inactive ─────────────────────────────────────────► Active
//	    ▲                                                 │  │
//	    │  reaches its end, or StopAnimation(true)        │  │ StopAnimation(false)
//	    └─────────────────────────────────────────────────┘  ▼
//	    ▲                                                  Stopped
//	    └──────────────── FinishAnimation ───────────────────┘
type AnimatorState int

const (
	// AnimatorInactive means the animator is not started, or has finished.
	AnimatorInactive AnimatorState = iota
	// AnimatorActive means the animator is running or paused mid-flight.
	AnimatorActive
	// AnimatorStopped means the animator was stopped and awaits FinishAnimation.
	AnimatorStopped
)

// String returns a human-readable representation of the animator state.
func (s AnimatorState) String() string {
	switch s {
	case AnimatorInactive:
		return "inactive"
	case AnimatorActive:
		return "active"
	case AnimatorStopped:
		return "stopped"
	default:
		return fmt.Sprintf("AnimatorState(%d)", int(s))
	}
}

// Position identifies where an animator ended.
type Position int

const (
	// PositionEnd is the end of the animation (progress 1).
	PositionEnd Position = iota
	// PositionStart is the beginning of the animation (progress 0).
	PositionStart
	// PositionCurrent is wherever the animation was when it was finished.
	PositionCurrent
)

// String returns a human-readable representation of the position.
func (p Position) String() string {
	switch p {
	case PositionEnd:
		return "end"
	case PositionStart:
		return "start"
	case PositionCurrent:
		return "current"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// PropertyAnimator animates a progress value from 0 to 1 and hands each new
// progress to its animation closures, which interpolate whatever properties
// they own.
//
// Unlike a fire-and-forget animation, a PropertyAnimator can be paused and
// scrubbed with SetFractionComplete, reversed mid-flight, continued from any
// fraction, and stopped without finishing. Completion closures fire exactly
// once, when the animator reaches an end on its own or through
// FinishAnimation; StopAnimation(true) discards them.
type PropertyAnimator struct {
	// Duration is the length of a full 0 to 1 run.
	Duration time.Duration

	// Curve transforms linear time into progress. Nil means linear.
	Curve Curve

	state    AnimatorState
	running  bool
	reversed bool
	fraction float64
	progress float64
	ticker   *Ticker
	segment  segment

	animations  []func(progress float64)
	completions []func(Position)
}

// segment is one uninterrupted run from the current progress to a target.
type segment struct {
	fromProgress float64
	toProgress   float64
	fromFraction float64
	toFraction   float64
	duration     time.Duration
	curve        Curve
}

// NewPropertyAnimator creates an inactive animator.
func NewPropertyAnimator(duration time.Duration, curve Curve) *PropertyAnimator {
	return &PropertyAnimator{
		Duration: duration,
		Curve:    curve,
	}
}

// NewSpringAnimator creates an animator whose timing follows spring, starting
// with the given relative velocity (target distances per second).
func NewSpringAnimator(spring SpringDescription, initialVelocity float64) *PropertyAnimator {
	curve, duration := spring.Curve(initialVelocity)
	return NewPropertyAnimator(duration, curve)
}

// AddAnimations registers a closure that receives every new progress value.
func (a *PropertyAnimator) AddAnimations(fn func(progress float64)) {
	if fn == nil {
		return
	}
	a.animations = append(a.animations, fn)
}

// AddCompletion registers a closure called with the final position once the
// animator finishes. Completions run in registration order.
func (a *PropertyAnimator) AddCompletion(fn func(Position)) {
	if fn == nil {
		return
	}
	a.completions = append(a.completions, fn)
}

// State returns the animator state.
func (a *PropertyAnimator) State() AnimatorState {
	return a.state
}

// IsRunning reports whether the animator is advancing on its own.
func (a *PropertyAnimator) IsRunning() bool {
	return a.running
}

// IsReversed reports whether the animator runs toward the start.
func (a *PropertyAnimator) IsReversed() bool {
	return a.reversed
}

// FractionComplete returns the linear fraction of the animation completed.
func (a *PropertyAnimator) FractionComplete() float64 {
	return a.fraction
}

// Progress returns the last progress value delivered to the animations.
func (a *PropertyAnimator) Progress() float64 {
	return a.progress
}

// Start runs the animator from its current fraction toward its end, or its
// start when reversed. Starting a running or stopped animator is a no-op.
func (a *PropertyAnimator) Start() {
	a.run(a.Curve, 1)
}

// ContinueAnimation resumes a paused animator with an optional replacement
// curve. durationFactor scales the remaining duration; zero or negative
// means 1.
func (a *PropertyAnimator) ContinueAnimation(curve Curve, durationFactor float64) {
	if curve == nil {
		curve = a.Curve
	}
	if durationFactor <= 0 {
		durationFactor = 1
	}
	a.run(curve, durationFactor)
}

func (a *PropertyAnimator) run(curve Curve, durationFactor float64) {
	if a.state == AnimatorStopped || a.running {
		return
	}
	a.state = AnimatorActive
	a.running = true

	target := 1.0
	remaining := 1 - a.fraction
	if a.reversed {
		target = 0
		remaining = a.fraction
	}
	a.segment = segment{
		fromProgress: a.progress,
		toProgress:   target,
		fromFraction: a.fraction,
		toFraction:   target,
		duration:     time.Duration(float64(a.Duration) * remaining * durationFactor),
		curve:        curve,
	}

	a.ticker = NewTicker(a.tick)
	a.ticker.Start()
}

func (a *PropertyAnimator) tick(elapsed time.Duration) {
	if !a.running {
		return
	}
	seg := a.segment
	t := 1.0
	if seg.duration > 0 {
		t = float64(elapsed) / float64(seg.duration)
	}
	if t > 1 {
		t = 1
	}
	eased := t
	if seg.curve != nil {
		eased = seg.curve(t)
	}
	a.fraction = LerpFloat64(seg.fromFraction, seg.toFraction, t)
	a.setProgress(LerpFloat64(seg.fromProgress, seg.toProgress, eased))

	if t >= 1 {
		a.haltTicker()
		position := PositionEnd
		if seg.toProgress == 0 {
			position = PositionStart
		}
		a.complete(position)
	}
}

// Pause stops the animator from advancing without leaving the active state.
// Pausing an inactive animator makes it active at its current fraction.
func (a *PropertyAnimator) Pause() {
	if a.state == AnimatorStopped {
		return
	}
	a.haltTicker()
	a.state = AnimatorActive
}

// SetFractionComplete pauses the animator and scrubs it to fraction, which is
// clamped to [0, 1]. Scrubbing is linear: progress equals fraction.
func (a *PropertyAnimator) SetFractionComplete(fraction float64) {
	if a.state == AnimatorStopped {
		return
	}
	a.Pause()
	fraction = Clamp(fraction, 0, 1)
	a.fraction = fraction
	a.setProgress(fraction)
}

// SetReversed flips the direction of the animator. A running animator
// immediately heads toward the new target from where it is.
func (a *PropertyAnimator) SetReversed(reversed bool) {
	if a.reversed == reversed {
		return
	}
	a.reversed = reversed
	if a.running {
		curve := a.segment.curve
		a.haltTicker()
		a.run(curve, 1)
	}
}

// StopAnimation halts an active animator. With withoutFinishing the animator
// becomes inactive immediately and its completions never run; otherwise it
// moves to the stopped state and waits for FinishAnimation.
//
// Stopping an animator that is not active is a no-op, so calling this twice
// leaves the same state as calling it once.
func (a *PropertyAnimator) StopAnimation(withoutFinishing bool) {
	if a.state != AnimatorActive {
		return
	}
	a.haltTicker()
	if withoutFinishing {
		a.state = AnimatorInactive
		a.completions = nil
		return
	}
	a.state = AnimatorStopped
}

// FinishAnimation moves an active or stopped animator to position and runs
// its completions. It is a no-op on an inactive animator.
func (a *PropertyAnimator) FinishAnimation(at Position) {
	if a.state == AnimatorInactive {
		return
	}
	a.haltTicker()
	switch at {
	case PositionStart:
		a.fraction = 0
		a.setProgress(0)
	case PositionEnd:
		a.fraction = 1
		a.setProgress(1)
	}
	a.complete(at)
}

func (a *PropertyAnimator) complete(at Position) {
	a.state = AnimatorInactive
	completions := a.completions
	a.completions = nil
	for _, fn := range completions {
		fn(at)
	}
}

func (a *PropertyAnimator) haltTicker() {
	a.running = false
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
}

func (a *PropertyAnimator) setProgress(progress float64) {
	a.progress = progress
	for _, fn := range a.animations {
		fn(progress)
	}
}
