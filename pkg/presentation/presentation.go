package presentation

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/go-drift/present/pkg/errors"
	"github.com/go-drift/present/pkg/graphics"
)

// Presentation is the engine's record for one item: its transition state,
// its chrome and the values last drawn into it. Presentations are created
// and destroyed by the [Engine]; hosts only read them.
type Presentation struct {
	id   uuid.UUID
	item Item

	state               TransitionState
	containerVisibility Visibility
	lifecycle           Visibility

	chrome    Chrome
	values    DisplayValues
	hasValues bool

	preferredSize      graphics.Size
	preferredSizeKnown bool
	preheatPasses      int

	interaction interaction
	// release is the velocity of the gesture that committed the pending
	// exit, if one did.
	release *graphics.Offset

	removeSizeListener func()
	onTransition       func(p *Presentation, from, to TransitionState)
	logger             *slog.Logger
	tornDown           bool
}

func newPresentation(item Item, initial TransitionState, container Visibility, logger *slog.Logger) *Presentation {
	id := uuid.New()
	p := &Presentation{
		id:                  id,
		item:                item,
		state:               Pending(),
		containerVisibility: container,
		lifecycle:           Disappeared,
		chrome:              newChrome(id),
		logger:              logger,
	}
	p.SetTransitionState(initial)
	return p
}

// ID returns the presentation's stable identifier.
func (p *Presentation) ID() uuid.UUID { return p.id }

// Item returns the item currently backing the presentation.
func (p *Presentation) Item() Item { return p.item }

// Content returns the presented content.
func (p *Presentation) Content() Content { return p.item.Content }

// Style returns the style currently applied.
func (p *Presentation) Style() Style { return p.item.Style }

// State returns the transition state.
func (p *Presentation) State() TransitionState { return p.state }

// Chrome returns the surfaces drawn for the presentation.
func (p *Presentation) Chrome() Chrome { return p.chrome }

// Values returns the values last drawn into the chrome.
func (p *Presentation) Values() DisplayValues { return p.values }

// Frame returns the presentation's current frame.
func (p *Presentation) Frame() graphics.Rect { return p.values.Frame }

// Visibility returns the effective visibility: the lesser of what the
// transition state implies and the container's own visibility.
func (p *Presentation) Visibility() Visibility {
	return MinVisibility(p.state.Visibility(), p.containerVisibility)
}

// LifecycleVisibility returns the phase the content was last told it is in.
func (p *Presentation) LifecycleVisibility() Visibility { return p.lifecycle }

// PreheatPasses returns how many measuring passes preceded the last enter.
func (p *Presentation) PreheatPasses() int { return p.preheatPasses }

// IsTornDown reports whether the presentation has been removed.
func (p *Presentation) IsTornDown() bool { return p.tornDown }

// SetTransitionState moves the presentation to s. It stops the animator of
// the previous state when s does not carry the same one, then updates the
// effective visibility and delivers the resulting lifecycle callbacks, in
// that order.
func (p *Presentation) SetTransitionState(s TransitionState) {
	if p.tornDown {
		return
	}
	old := p.state
	if a := old.Animator(); a != nil && a != s.Animator() {
		a.StopAnimation(true)
	}
	p.state = s
	if s.Kind() != StatePresented && !s.IsInteracting() {
		// Leaving the presented and interactive states ends any gesture.
		p.interaction = interaction{}
	}
	p.updateLifecycle()
	if p.onTransition != nil && old.Kind() != s.Kind() {
		p.onTransition(p, old, s)
	}
}

func (p *Presentation) setContainerVisibility(v Visibility) {
	if p.containerVisibility == v {
		return
	}
	p.containerVisibility = v
	p.updateLifecycle()
}

func (p *Presentation) updateLifecycle() {
	events, next := p.lifecycle.Transition(p.Visibility())
	p.lifecycle = next
	for _, e := range events {
		p.emit(e)
	}
}

func (p *Presentation) emit(e LifecycleEvent) {
	defer errors.Recover("presentation.lifecycle." + e.String())
	if p.logger != nil {
		p.logger.Debug("lifecycle", "presentation", p.id, "event", e)
	}
	c := p.item.Content
	if c == nil {
		return
	}
	switch e {
	case WillAppear:
		c.WillAppear()
	case DidAppear:
		c.DidAppear()
	case WillDisappear:
		c.WillDisappear()
	case DidDisappear:
		c.DidDisappear()
	}
}

func (p *Presentation) apply(v DisplayValues, container graphics.Size) {
	p.values = v
	p.hasValues = true
	p.chrome.apply(v, container)
}

func (p *Presentation) invalidatePreferredSize() {
	p.preferredSizeKnown = false
}

// teardown stops all animation, tells the content it is gone and detaches
// the chrome. It is safe to call more than once.
func (p *Presentation) teardown() {
	if p.tornDown {
		return
	}
	if a := p.state.Animator(); a != nil {
		a.StopAnimation(true)
	}
	p.interaction = interaction{}
	p.state = PendingRemoval()
	events, next := p.lifecycle.Transition(Disappeared)
	p.lifecycle = next
	for _, e := range events {
		p.emit(e)
	}
	if p.removeSizeListener != nil {
		p.removeSizeListener()
		p.removeSizeListener = nil
	}
	p.chrome.detach()
	p.tornDown = true
}
