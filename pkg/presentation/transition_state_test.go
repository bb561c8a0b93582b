package presentation

import (
	"testing"

	"github.com/go-drift/present/pkg/animation"
)

func TestTransitionStateZeroValueIsPending(t *testing.T) {
	var s TransitionState
	if s.Kind() != StatePending || s.Animator() != nil {
		t.Errorf("zero state = %v with animator %v, want pending without animator", s, s.Animator())
	}
}

func TestTransitionStateAnimatorVariantsRequireAnimator(t *testing.T) {
	constructors := map[string]func(*animation.PropertyAnimator) TransitionState{
		"entering":           Entering,
		"adaptingToKeyboard": AdaptingToKeyboard,
		"interactiveDismiss": InteractiveDismiss,
		"interactiveInverse": InteractiveInverse,
		"exiting":            Exiting,
	}
	for name, ctor := range constructors {
		t.Run(name, func(t *testing.T) {
			a := stoppedAnimator()
			if s := ctor(a); s.Animator() != a || s.String() != name {
				t.Errorf("%s carries %p, want %p", s, s.Animator(), a)
			}
			expectInvariant(t, func() { ctor(nil) })
		})
	}
}

func TestTransitionStateVisibility(t *testing.T) {
	a := stoppedAnimator()
	tests := []struct {
		state       TransitionState
		want        Visibility
		interacting bool
	}{
		{Pending(), Disappeared, false},
		{Entering(a), Appearing, false},
		{Presented(), Appeared, false},
		{TransitioningSize(), Appeared, false},
		{AdaptingToKeyboard(a), Appeared, false},
		{InteractiveDismiss(a), Disappearing, true},
		{InteractiveInverse(a), Appearing, true},
		{PendingExit(), Appeared, false},
		{Exiting(a), Disappearing, false},
		{PendingRemoval(), Disappeared, false},
	}
	for _, tt := range tests {
		if got := tt.state.Visibility(); got != tt.want {
			t.Errorf("%v.Visibility() = %v, want %v", tt.state, got, tt.want)
		}
		if got := tt.state.IsInteracting(); got != tt.interacting {
			t.Errorf("%v.IsInteracting() = %v, want %v", tt.state, got, tt.interacting)
		}
	}
}
