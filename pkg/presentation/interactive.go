package presentation

import (
	"fmt"
	"math"

	"github.com/go-drift/present/pkg/animation"
	"github.com/go-drift/present/pkg/dynamics"
	"github.com/go-drift/present/pkg/graphics"
)

// GesturePhase is the phase of a continuous gesture.
type GesturePhase int

const (
	GestureBegan GesturePhase = iota
	GestureChanged
	GestureEnded
	GestureCancelled
)

func (p GesturePhase) String() string {
	switch p {
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	case GestureCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("GesturePhase(%d)", int(p))
	}
}

// PanGesture is one update of a drag on the presentation itself.
// Translation is measured from where the drag began; Velocity is in points
// per second.
type PanGesture struct {
	Phase       GesturePhase
	Translation graphics.Offset
	Velocity    graphics.Offset
}

// ScrollGesture is one update of a drag on a scroll view inside the
// presentation.
type ScrollGesture struct {
	Phase       GesturePhase
	Translation graphics.Offset
	Velocity    graphics.Offset
	// ContentOffset is the scroll view's current content offset.
	ContentOffset graphics.Offset
	// AdjustedTopInset is the scroll view's effective top inset; the
	// content is at its top when ContentOffset.Y equals -AdjustedTopInset.
	AdjustedTopInset  float64
	IsDecelerating    bool
	HasRefreshControl bool
}

// ScrollResult tells the host what to do with the scroll view.
type ScrollResult struct {
	// ContentOffset is the offset the scroll view should have. While the
	// presentation tracks the drag it is pinned to the top.
	ContentOffset graphics.Offset
	// Tracking reports whether the presentation is following the drag.
	Tracking bool
}

type gestureSource int

const (
	sourcePan gestureSource = iota
	sourceScroll
)

// interaction is the per-gesture snapshot of the values being scrubbed.
type interaction struct {
	active   bool
	source   gestureSource
	behavior Behavior

	display    DisplayValues
	exit       DisplayValues
	reverse    DisplayValues
	hasReverse bool

	dismissDistance float64
	inverseDistance float64
	// base is where the presentation sat, relative to its display frame,
	// when the gesture began. It lets a drag that catches a settling
	// presentation continue from where it is.
	base float64
	// start is the scroll translation at which tracking began.
	start float64
}

// FractionComplete converts a drag offset into the fraction of a transition
// covering distance. The result is clamped to [0, 1]; a non-positive
// distance yields 0.
func FractionComplete(offset, distance float64) float64 {
	if !(distance > 0) {
		return 0
	}
	return animation.Clamp(math.Abs(offset)/distance, 0, 1)
}

// HandlePan routes a drag on the presentation's surface. Drags on
// presentations that are not presented, or whose style does not allow
// interactive dismissal, are ignored.
func (e *Engine) HandlePan(p *Presentation, g PanGesture) {
	if !e.tracks(p) {
		return
	}
	switch g.Phase {
	case GestureBegan:
		e.beginInteraction(p, sourcePan)
	case GestureChanged:
		if p.interactingWith(sourcePan) {
			e.updateInteraction(p, p.interaction.base+g.Translation.Y, true)
		}
	case GestureEnded, GestureCancelled:
		if p.interactingWith(sourcePan) {
			e.endInteraction(p, g.Velocity, g.Phase == GestureEnded)
		}
	}
}

// HandleScroll routes a drag on a scroll view inside the presentation.
// Tracking only starts while the scroll view rests at its top without a
// refresh control; from then on downward drags move the presentation and
// the scroll view is pinned, and upward drags scroll the content.
func (e *Engine) HandleScroll(p *Presentation, g ScrollGesture) ScrollResult {
	res := ScrollResult{ContentOffset: g.ContentOffset}
	if !e.tracks(p) {
		return res
	}
	top := -g.AdjustedTopInset
	atTop := g.ContentOffset.Y <= top+e.tuning.ScrollTopTolerance
	it := &p.interaction

	switch g.Phase {
	case GestureBegan:
		if !atTop || g.IsDecelerating || g.HasRefreshControl {
			return res
		}
		if e.beginInteraction(p, sourceScroll) {
			p.interaction.start = g.Translation.Y
		}
	case GestureChanged:
		if !p.interactingWith(sourceScroll) {
			return res
		}
		offset := it.base + g.Translation.Y - it.start
		if offset <= 0 {
			// The content scrolls; the presentation rests.
			e.updateInteraction(p, 0, false)
			p.interaction.start = g.Translation.Y
			p.interaction.base = 0
			return res
		}
		e.updateInteraction(p, offset, false)
		res.ContentOffset.Y = top
		res.Tracking = true
	case GestureEnded, GestureCancelled:
		if !p.interactingWith(sourceScroll) {
			return res
		}
		tracking := p.state.Kind() == StateInteractiveDismiss
		e.endInteraction(p, g.Velocity, g.Phase == GestureEnded && atTop)
		if tracking {
			res.ContentOffset.Y = top
		}
	}
	return res
}

// interactingWith reports whether a gesture from source is driving p. Only
// presented or interactive presentations take gesture updates.
func (p *Presentation) interactingWith(source gestureSource) bool {
	if !p.interaction.active || p.interaction.source != source {
		return false
	}
	return p.state.Kind() == StatePresented || p.state.IsInteracting()
}

// beginInteraction snapshots the values a gesture scrubs between.
func (e *Engine) beginInteraction(p *Presentation, source gestureSource) bool {
	kind := p.state.Kind()
	if kind != StatePresented && !p.state.IsInteracting() {
		return false
	}
	ctx := e.context(p, true)
	behavior := p.Style().Behavior(ctx)
	if behavior.InteractiveDismiss != InteractiveDismissSwipeDown {
		return false
	}

	it := interaction{
		active:   true,
		source:   source,
		behavior: behavior,
		display:  p.Style().DisplayValues(ctx),
		exit:     p.Style().ExitTransitionValues(ctx).Values,
	}
	it.reverse, it.hasReverse = p.Style().ReverseTransitionValues(ctx)
	it.dismissDistance = it.exit.Frame.Top - it.display.Frame.Top
	if it.hasReverse {
		it.inverseDistance = math.Abs(it.display.Frame.Top - it.reverse.Frame.Top)
	}
	if p.hasValues {
		it.base = p.values.Frame.Top - it.display.Frame.Top
	}

	// A drag that catches a settling presentation takes over from its
	// animator.
	if p.state.IsInteracting() {
		p.SetTransitionState(Presented())
	}
	p.interaction = it
	e.logger.Debug("interaction began", "presentation", p.id, "dismissDistance", it.dismissDistance)
	return true
}

// updateInteraction scrubs p to a drag offset measured from its display
// frame. Positive offsets move toward the exit values; negative offsets
// stretch toward the reverse values when allowed and the style has them.
func (e *Engine) updateInteraction(p *Presentation, offset float64, allowInverse bool) {
	it := &p.interaction
	kind := p.state.Kind()

	if offset >= 0 || !allowInverse || !it.hasReverse {
		if kind == StateInteractiveInverse {
			e.crossOver(p)
		}
		fraction := 0.0
		if offset > 0 {
			fraction = FractionComplete(offset, it.dismissDistance)
		}
		if p.state.Kind() != StateInteractiveDismiss {
			if fraction == 0 {
				return
			}
			e.scrub(p, it.exit, InteractiveDismiss)
		}
		p.state.Animator().SetFractionComplete(fraction)
		return
	}

	if kind == StateInteractiveDismiss {
		e.crossOver(p)
	}
	if p.state.Kind() != StateInteractiveInverse {
		e.scrub(p, it.reverse, InteractiveInverse)
	}
	raw := FractionComplete(offset, it.inverseDistance*e.tuning.InverseResistance)
	p.state.Animator().SetFractionComplete(animation.RubberBand(raw))
}

// scrub installs a paused animator from the display values to target.
func (e *Engine) scrub(p *Presentation, target DisplayValues, wrap func(*animation.PropertyAnimator) TransitionState) {
	spring := e.tuning.DismissSpring
	a := Animation{Spring: &spring}.newAnimator(0)
	tween := &animation.Tween[DisplayValues]{Begin: p.interaction.display, End: target, Lerp: LerpDisplayValues}
	a.AddAnimations(func(t float64) {
		if e.tracks(p) {
			p.apply(tween.Evaluate(t), e.container.Size)
		}
	})
	a.Pause()
	p.SetTransitionState(wrap(a))
}

// crossOver snaps the current interactive animator back to its start,
// which is the display values, before the drag switches direction.
func (e *Engine) crossOver(p *Presentation) {
	a := p.state.Animator()
	a.StopAnimation(false)
	a.FinishAnimation(animation.PositionStart)
	p.SetTransitionState(Presented())
}

// endInteraction decides between dismissing and settling back. A release
// commits when the frame, projected forward along the release velocity,
// reaches the dismiss threshold.
func (e *Engine) endInteraction(p *Presentation, velocity graphics.Offset, allowCommit bool) {
	it := p.interaction
	p.interaction = interaction{}
	kind := p.state.Kind()
	if a := p.state.Animator(); a != nil {
		a.StopAnimation(true)
	}

	if allowCommit && kind == StateInteractiveDismiss && it.dismissDistance > 0 {
		projected := dynamics.ProjectedFrame(p.values.Frame, velocity, e.tuning.DecelerationRate)
		threshold := it.display.Frame.Top + it.dismissDistance*e.tuning.DismissThreshold
		if projected.Top >= threshold {
			e.logger.Debug("interaction committed", "presentation", p.id, "projectedTop", projected.Top)
			p.release = &velocity
			e.exit(p)
			if it.behavior.OnDismiss != nil {
				it.behavior.OnDismiss()
			}
			return
		}
	}
	e.settle(p, velocity, kind)
}

// settle springs p back to its display values. The settling animator keeps
// the interactive state so that layout leaves the chrome alone until it
// lands.
func (e *Engine) settle(p *Presentation, velocity graphics.Offset, kind StateKind) {
	display := p.Style().DisplayValues(e.context(p, false))
	if !p.state.IsInteracting() {
		if p.values != display {
			p.apply(display, e.container.Size)
		}
		p.SetTransitionState(Presented())
		return
	}
	relative := 0.0
	if distance := display.Frame.Top - p.values.Frame.Top; distance != 0 {
		relative = velocity.Y / distance
	}
	spring := e.tuning.SettleSpring
	wrap := InteractiveDismiss
	if kind == StateInteractiveInverse {
		wrap = InteractiveInverse
	}
	e.animate(p, p.values, display, Animation{Spring: &spring}, relative, wrap, func(animation.Position) {
		p.SetTransitionState(Presented())
	})
}
