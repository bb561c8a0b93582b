package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/present/pkg/animation"
	presenttest "github.com/go-drift/present/pkg/testing"
)

func TestPropertyAnimator_RunsToEnd(t *testing.T) {
	h := presenttest.NewHarness(t)
	a := animation.NewPropertyAnimator(100*time.Millisecond, nil)

	var last float64
	var completedAt []animation.Position
	a.AddAnimations(func(p float64) { last = p })
	a.AddCompletion(func(pos animation.Position) { completedAt = append(completedAt, pos) })
	a.Start()

	h.Pump(50 * time.Millisecond)
	if math.Abs(last-0.5) > 1e-9 {
		t.Errorf("progress at 50ms = %v, want 0.5", last)
	}
	if a.State() != animation.AnimatorActive || !a.IsRunning() {
		t.Errorf("state = %v running=%v, want active and running", a.State(), a.IsRunning())
	}

	h.Pump(60 * time.Millisecond)
	if last != 1 {
		t.Errorf("final progress = %v, want 1", last)
	}
	if len(completedAt) != 1 || completedAt[0] != animation.PositionEnd {
		t.Errorf("completions = %v, want [end]", completedAt)
	}
	if a.State() != animation.AnimatorInactive {
		t.Errorf("state = %v, want inactive", a.State())
	}
}

func TestPropertyAnimator_StopWithoutFinishingIsIdempotent(t *testing.T) {
	h := presenttest.NewHarness(t)

	run := func(stops int) (animation.AnimatorState, float64, bool) {
		a := animation.NewPropertyAnimator(100*time.Millisecond, nil)
		completed := false
		a.AddCompletion(func(animation.Position) { completed = true })
		a.Start()
		h.Pump(30 * time.Millisecond)
		for range stops {
			a.StopAnimation(true)
		}
		h.Pump(200 * time.Millisecond)
		return a.State(), a.Progress(), completed
	}

	s1, p1, c1 := run(1)
	s2, p2, c2 := run(2)
	if s1 != s2 || p1 != p2 || c1 != c2 {
		t.Errorf("stop once = (%v, %v, %v), stop twice = (%v, %v, %v)", s1, p1, c1, s2, p2, c2)
	}
	if s1 != animation.AnimatorInactive {
		t.Errorf("state = %v, want inactive", s1)
	}
	if c1 {
		t.Error("completion must not run after stop without finishing")
	}
	if math.Abs(p1-0.3) > 1e-9 {
		t.Errorf("progress = %v, want 0.3 (frozen where stopped)", p1)
	}
}

func TestPropertyAnimator_StopThenFinishAtStart(t *testing.T) {
	presenttest.NewHarness(t)
	a := animation.NewPropertyAnimator(100*time.Millisecond, nil)
	var progress float64
	var at animation.Position = -1
	a.AddAnimations(func(p float64) { progress = p })
	a.AddCompletion(func(pos animation.Position) { at = pos })

	a.SetFractionComplete(0.7)
	a.StopAnimation(false)
	if a.State() != animation.AnimatorStopped {
		t.Fatalf("state = %v, want stopped", a.State())
	}
	a.FinishAnimation(animation.PositionStart)

	if progress != 0 {
		t.Errorf("progress = %v, want 0", progress)
	}
	if at != animation.PositionStart {
		t.Errorf("completed at %v, want start", at)
	}
	if a.State() != animation.AnimatorInactive {
		t.Errorf("state = %v, want inactive", a.State())
	}
}

func TestPropertyAnimator_ScrubAndContinue(t *testing.T) {
	h := presenttest.NewHarness(t)
	a := animation.NewPropertyAnimator(200*time.Millisecond, nil)
	var progress float64
	a.AddAnimations(func(p float64) { progress = p })

	a.SetFractionComplete(1.5)
	if a.FractionComplete() != 1 {
		t.Errorf("fraction clamps to 1, got %v", a.FractionComplete())
	}
	a.SetFractionComplete(0.5)
	if progress != 0.5 || a.IsRunning() {
		t.Errorf("progress = %v running = %v, want 0.5 paused", progress, a.IsRunning())
	}

	done := false
	a.AddCompletion(func(animation.Position) { done = true })
	a.ContinueAnimation(nil, 0)
	// Half the duration remains.
	h.Pump(100 * time.Millisecond)
	if !done || progress != 1 {
		t.Errorf("done = %v progress = %v, want completion at 1", done, progress)
	}
}

func TestPropertyAnimator_Reversed(t *testing.T) {
	h := presenttest.NewHarness(t)
	a := animation.NewPropertyAnimator(100*time.Millisecond, nil)
	var at animation.Position = -1
	a.AddCompletion(func(pos animation.Position) { at = pos })

	a.SetFractionComplete(0.4)
	a.SetReversed(true)
	a.Start()
	h.Pump(40 * time.Millisecond)

	if at != animation.PositionStart {
		t.Errorf("completed at %v, want start", at)
	}
	if a.Progress() != 0 {
		t.Errorf("progress = %v, want 0", a.Progress())
	}
}

func TestPropertyAnimator_ZeroDurationCompletesOnNextFrame(t *testing.T) {
	h := presenttest.NewHarness(t)
	a := animation.NewPropertyAnimator(0, nil)
	done := false
	a.AddCompletion(func(animation.Position) { done = true })
	a.Start()
	if done {
		t.Fatal("completion must not run synchronously inside Start")
	}
	h.Pump(0)
	if !done {
		t.Error("expected completion on the next frame")
	}
}

func TestAnimatorStateString(t *testing.T) {
	tests := []struct {
		state animation.AnimatorState
		want  string
	}{
		{animation.AnimatorInactive, "inactive"},
		{animation.AnimatorActive, "active"},
		{animation.AnimatorStopped, "stopped"},
		{animation.AnimatorState(9), "AnimatorState(9)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
