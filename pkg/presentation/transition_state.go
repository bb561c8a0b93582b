package presentation

import (
	"fmt"

	"github.com/go-drift/present/pkg/animation"
	"github.com/go-drift/present/pkg/errors"
)

// StateKind tags the variant of a TransitionState.
//
//	Pending ──► Entering ──► Presented ◄──► InteractiveDismiss ◄──► InteractiveInverse
//	                │            │  ▲                │
//	                ▼            │  └── TransitioningSize, AdaptingToKeyboard
//	        AdaptingToKeyboard   ▼                   │ commit
//	                         PendingExit ──► Exiting ◄┘ ──► PendingRemoval
type StateKind int

const (
	StatePending StateKind = iota
	StateEntering
	StatePresented
	StateTransitioningSize
	StateAdaptingToKeyboard
	StateInteractiveDismiss
	StateInteractiveInverse
	StatePendingExit
	StateExiting
	StatePendingRemoval
)

// String returns a human-readable representation of the kind.
func (k StateKind) String() string {
	switch k {
	case StatePending:
		return "pending"
	case StateEntering:
		return "entering"
	case StatePresented:
		return "presented"
	case StateTransitioningSize:
		return "transitioningSize"
	case StateAdaptingToKeyboard:
		return "adaptingToKeyboard"
	case StateInteractiveDismiss:
		return "interactiveDismiss"
	case StateInteractiveInverse:
		return "interactiveInverse"
	case StatePendingExit:
		return "pendingExit"
	case StateExiting:
		return "exiting"
	case StatePendingRemoval:
		return "pendingRemoval"
	default:
		return fmt.Sprintf("StateKind(%d)", int(k))
	}
}

// TransitionState is the lifecycle state of a presentation. Entering,
// AdaptingToKeyboard, InteractiveDismiss, InteractiveInverse and Exiting
// carry the animator driving them; every other variant carries none.
// The zero value is Pending.
type TransitionState struct {
	kind     StateKind
	animator *animation.PropertyAnimator
}

func Pending() TransitionState           { return TransitionState{kind: StatePending} }
func Presented() TransitionState         { return TransitionState{kind: StatePresented} }
func TransitioningSize() TransitionState { return TransitionState{kind: StateTransitioningSize} }
func PendingExit() TransitionState       { return TransitionState{kind: StatePendingExit} }
func PendingRemoval() TransitionState    { return TransitionState{kind: StatePendingRemoval} }

func Entering(a *animation.PropertyAnimator) TransitionState {
	return withAnimator(StateEntering, a)
}

func AdaptingToKeyboard(a *animation.PropertyAnimator) TransitionState {
	return withAnimator(StateAdaptingToKeyboard, a)
}

func InteractiveDismiss(a *animation.PropertyAnimator) TransitionState {
	return withAnimator(StateInteractiveDismiss, a)
}

func InteractiveInverse(a *animation.PropertyAnimator) TransitionState {
	return withAnimator(StateInteractiveInverse, a)
}

func Exiting(a *animation.PropertyAnimator) TransitionState {
	return withAnimator(StateExiting, a)
}

func withAnimator(kind StateKind, a *animation.PropertyAnimator) TransitionState {
	if a == nil {
		errors.Invariant("presentation.TransitionState", "%s requires an animator", kind)
	}
	return TransitionState{kind: kind, animator: a}
}

// Kind returns the variant tag.
func (s TransitionState) Kind() StateKind {
	return s.kind
}

// Animator returns the attached animator, or nil for variants without one.
func (s TransitionState) Animator() *animation.PropertyAnimator {
	return s.animator
}

// IsInteracting reports whether a gesture is driving the presentation, in
// which case layout leaves the chrome to the gesture's animator.
func (s TransitionState) IsInteracting() bool {
	return s.kind == StateInteractiveDismiss || s.kind == StateInteractiveInverse
}

// IsExiting reports whether the presentation is animating out.
func (s TransitionState) IsExiting() bool {
	return s.kind == StateExiting
}

// Visibility maps the state to the phase it implies for the content.
func (s TransitionState) Visibility() Visibility {
	switch s.kind {
	case StateEntering, StateInteractiveInverse:
		return Appearing
	case StatePresented, StateTransitioningSize, StateAdaptingToKeyboard, StatePendingExit:
		return Appeared
	case StateExiting, StateInteractiveDismiss:
		return Disappearing
	default:
		return Disappeared
	}
}

func (s TransitionState) String() string {
	return s.kind.String()
}
