package presentation

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-drift/present/pkg/animation"
	"github.com/go-drift/present/pkg/errors"
	"github.com/go-drift/present/pkg/graphics"
	"github.com/go-drift/present/pkg/keyboard"
)

// Layout reconciles pending item changes and lays out every presentation.
func (e *Engine) Layout() {
	if e.closed {
		return
	}
	e.UpdateIfNeeded()
	for _, p := range slices.Clone(e.presentations) {
		e.layoutPresentation(p)
	}
}

// layoutPresentation draws the resting values of p unless an animator or a
// gesture currently owns its chrome.
func (e *Engine) layoutPresentation(p *Presentation) {
	if !e.tracks(p) || !e.isLaidOut() {
		return
	}
	switch p.state.Kind() {
	case StatePending:
		if e.canAnimate() {
			e.enter(p)
		}
	case StatePresented, StatePendingExit, StateTransitioningSize:
		e.measure(p)
		p.apply(p.Style().DisplayValues(e.context(p, false)), e.container.Size)
	case StateExiting:
		// A stopped exit no longer moves on its own; hold it at its end.
		if a := p.state.Animator(); a != nil && !a.IsRunning() {
			p.apply(p.Style().ExitTransitionValues(e.context(p, false)).Values, e.container.Size)
		}
	}
}

// measure runs up to MaxPreheatPasses layout passes to learn the content's
// preferred size. Each pass lays out with the last measured size and asks
// the content again, stopping once the answer is stable.
func (e *Engine) measure(p *Presentation) {
	if p.preferredSizeKnown || p.Content() == nil {
		return
	}
	if !e.behavior(p).UsesPreferredContentSize {
		return
	}
	passes := 0
	for passes < e.tuning.MaxPreheatPasses {
		passes++
		fitting := p.Style().DisplayValues(e.context(p, false)).Frame.Size()
		size, ok := p.Content().PreferredSize(fitting)
		if !ok {
			e.logger.Debug("preferred size unknown", "presentation", p.id)
			break
		}
		if !validSize(size) {
			errors.Report(&errors.PresentError{
				Op:           "presentation.Engine.measure",
				Kind:         errors.KindLayout,
				Err:          fmt.Errorf("content %T reported preferred size %vx%v", p.Content(), size.Width, size.Height),
				Presentation: p.id.String(),
			})
			break
		}
		stable := p.preferredSizeKnown && size == p.preferredSize
		p.preferredSize = size
		p.preferredSizeKnown = true
		if stable {
			break
		}
	}
	p.preheatPasses = passes
}

func validSize(s graphics.Size) bool {
	return s.Width >= 0 && s.Height >= 0 && !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0)
}

// animate starts a fresh animator moving p from one set of values to
// another and installs it with the state built by wrap. done runs only if
// the animator is still the one attached to p when it completes.
func (e *Engine) animate(p *Presentation, from, to DisplayValues, anim Animation, velocity float64, wrap func(*animation.PropertyAnimator) TransitionState, done func(animation.Position)) *animation.PropertyAnimator {
	a := anim.newAnimator(velocity)
	tween := &animation.Tween[DisplayValues]{Begin: from, End: to, Lerp: LerpDisplayValues}
	a.AddAnimations(func(t float64) {
		if e.tracks(p) {
			p.apply(tween.Evaluate(t), e.container.Size)
		}
	})
	a.AddCompletion(func(at animation.Position) {
		if !e.tracks(p) || p.state.Animator() != a {
			return
		}
		done(at)
	})
	p.apply(from, e.container.Size)
	p.SetTransitionState(wrap(a))
	a.Start()
	return a
}

// enter animates p from its enter values to its display values.
func (e *Engine) enter(p *Presentation) {
	if !e.canAnimate() {
		p.SetTransitionState(Presented())
		e.layoutPresentation(p)
		return
	}
	e.measure(p)
	ctx := e.context(p, false)
	enter := p.Style().EnterTransitionValues(ctx)
	display := p.Style().DisplayValues(ctx)
	e.animate(p, enter.Values, display, enter.Animation, 0, Entering, func(animation.Position) {
		e.finishEntering(p, display)
	})
}

// revive turns an exit around: p animates from wherever it is back to its
// display values.
func (e *Engine) revive(p *Presentation) {
	ctx := e.context(p, false)
	display := p.Style().DisplayValues(ctx)
	anim := p.Style().EnterTransitionValues(ctx).Animation
	e.animate(p, p.values, display, anim, 0, Entering, func(animation.Position) {
		e.finishEntering(p, display)
	})
}

// finishEntering settles an entered presentation. The display values are
// computed again because the keyboard may have moved during the entrance.
func (e *Engine) finishEntering(p *Presentation, animatedTo DisplayValues) {
	ctx := e.context(p, false)
	display := p.Style().DisplayValues(ctx)
	if display != animatedTo && p.Style().Behavior(ctx).AvoidsKeyboard {
		e.adaptToKeyboard(p, display, keyboardAnimation(e.lastKeyboardChange))
		return
	}
	p.apply(display, e.container.Size)
	p.SetTransitionState(Presented())
}

// exit animates p to its exit values. A presentation released by a gesture
// carries the release velocity into a spring.
func (e *Engine) exit(p *Presentation) {
	switch p.state.Kind() {
	case StateExiting, StatePendingRemoval:
		return
	}
	if !e.canAnimate() {
		p.SetTransitionState(PendingRemoval())
		e.finishExit(p)
		return
	}
	var velocity graphics.Offset
	released := p.release != nil
	if released {
		velocity = *p.release
		p.release = nil
	}

	ctx := e.context(p, released || p.state.IsInteracting())
	ctx.Velocity = velocity
	exit := p.Style().ExitTransitionValues(ctx)
	from := p.values
	anim := exit.Animation
	relative := 0.0
	if released {
		if distance := exit.Values.Frame.Top - from.Frame.Top; distance != 0 {
			relative = velocity.Y / distance
		}
		spring := e.tuning.DismissSpring
		anim = Animation{Spring: &spring}
	}
	e.animate(p, from, exit.Values, anim, relative, Exiting, func(animation.Position) {
		p.SetTransitionState(PendingRemoval())
		e.finishExit(p)
	})
}

// finishExit removes an exited presentation, or parks it if its item is
// still requested so that the next update presents it again.
func (e *Engine) finishExit(p *Presentation) {
	if e.isRequested(p.Content()) {
		return
	}
	e.remove(p)
}

func (e *Engine) adaptToKeyboard(p *Presentation, to DisplayValues, anim Animation) {
	e.animate(p, p.values, to, anim, 0, AdaptingToKeyboard, func(animation.Position) {
		p.SetTransitionState(Presented())
	})
}

func keyboardAnimation(change keyboard.Change) Animation {
	curve := change.Curve
	if curve == nil {
		curve = animation.KeyboardCurve
	}
	return Animation{Duration: change.Duration, Curve: curve}
}

// KeyboardFrameWillChange re-lays out keyboard-avoiding presentations with
// the keyboard's own animation. It makes the Engine a keyboard.Delegate.
func (e *Engine) KeyboardFrameWillChange(change keyboard.Change) {
	if e.closed {
		return
	}
	e.keyboardFrame = change.Frame
	e.lastKeyboardChange = change
	if !e.canAnimate() {
		e.Layout()
		return
	}
	for _, p := range slices.Clone(e.presentations) {
		kind := p.state.Kind()
		if kind != StatePresented && kind != StateAdaptingToKeyboard {
			continue
		}
		ctx := e.context(p, false)
		if !p.Style().Behavior(ctx).AvoidsKeyboard {
			continue
		}
		display := p.Style().DisplayValues(ctx)
		if kind == StatePresented && display == p.values {
			continue
		}
		e.adaptToKeyboard(p, display, keyboardAnimation(change))
	}
}

// Coordinator runs a size transition alongside the host's own animation.
type Coordinator interface {
	AnimateAlongside(animations func(), completion func())
}

// ImmediateCoordinator applies a size transition at once.
type ImmediateCoordinator struct{}

// AnimateAlongside runs animations and then completion.
func (ImmediateCoordinator) AnimateAlongside(animations func(), completion func()) {
	animations()
	completion()
}

// TransitionToSize moves the container to size. Presentations that are
// entering, presented, adapting or being dragged give up their animator and
// are laid out at the new size inside the coordinator's animation; exiting
// presentations finish their exit undisturbed.
func (e *Engine) TransitionToSize(size graphics.Size, coordinator Coordinator) {
	if e.closed {
		return
	}
	if coordinator == nil {
		coordinator = ImmediateCoordinator{}
	}
	var affected []*Presentation
	for _, p := range e.presentations {
		switch p.state.Kind() {
		case StateEntering, StatePresented, StateAdaptingToKeyboard,
			StateInteractiveDismiss, StateInteractiveInverse, StateTransitioningSize:
			p.SetTransitionState(TransitioningSize())
			affected = append(affected, p)
		}
	}
	coordinator.AnimateAlongside(func() {
		e.container.Size = size
		for _, p := range affected {
			if p.state.Kind() != StateTransitioningSize {
				continue
			}
			p.invalidatePreferredSize()
			e.layoutPresentation(p)
		}
	}, func() {
		for _, p := range affected {
			if e.tracks(p) && p.state.Kind() == StateTransitioningSize {
				p.SetTransitionState(Presented())
			}
		}
		e.Layout()
	})
}
