package presentation

import "fmt"

// Visibility is the coarse appearance phase that drives content lifecycle
// callbacks.
type Visibility int

const (
	// Disappeared means the content is not on screen.
	Disappeared Visibility = iota
	// Appearing means the content is animating in.
	Appearing
	// Appeared means the content is on screen and at rest.
	Appeared
	// Disappearing means the content is animating out.
	Disappearing
)

// String returns a human-readable representation of the visibility.
func (v Visibility) String() string {
	switch v {
	case Disappeared:
		return "disappeared"
	case Appearing:
		return "appearing"
	case Appeared:
		return "appeared"
	case Disappearing:
		return "disappearing"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// rank orders visibilities from least to most visible.
func (v Visibility) rank() int {
	switch v {
	case Disappearing:
		return 1
	case Appearing:
		return 2
	case Appeared:
		return 3
	default:
		return 0
	}
}

// MinVisibility returns the less visible of a and b.
func MinVisibility(a, b Visibility) Visibility {
	if b.rank() < a.rank() {
		return b
	}
	return a
}

// LifecycleEvent is one content lifecycle callback.
type LifecycleEvent int

const (
	WillAppear LifecycleEvent = iota
	DidAppear
	WillDisappear
	DidDisappear
)

// String returns a human-readable representation of the event.
func (e LifecycleEvent) String() string {
	switch e {
	case WillAppear:
		return "willAppear"
	case DidAppear:
		return "didAppear"
	case WillDisappear:
		return "willDisappear"
	case DidDisappear:
		return "didDisappear"
	default:
		return fmt.Sprintf("LifecycleEvent(%d)", int(e))
	}
}

// lifecycleTable[from][to] lists the callbacks emitted when the effective
// visibility moves from one phase to another.
var lifecycleTable = [4][4][]LifecycleEvent{
	Disappeared: {
		Disappeared:  nil,
		Appearing:    {WillAppear},
		Appeared:     {WillAppear, DidAppear},
		Disappearing: nil,
	},
	Appearing: {
		Disappeared:  {WillDisappear, DidDisappear},
		Appearing:    nil,
		Appeared:     {DidAppear},
		Disappearing: {WillDisappear},
	},
	Appeared: {
		Disappeared:  {WillDisappear, DidDisappear},
		Appearing:    nil,
		Appeared:     nil,
		Disappearing: {WillDisappear},
	},
	Disappearing: {
		Disappeared:  {DidDisappear},
		Appearing:    {WillAppear},
		Appeared:     {WillAppear, DidAppear},
		Disappearing: nil,
	},
}

// LifecycleEvents returns the callbacks for moving from one visibility to
// another. The returned slice must not be modified.
func LifecycleEvents(from, to Visibility) []LifecycleEvent {
	if from < Disappeared || from > Disappearing || to < Disappeared || to > Disappearing {
		return nil
	}
	return lifecycleTable[from][to]
}

// Transition returns the callbacks for moving from v to target and the
// visibility the content is in afterwards. Two moves emit nothing and leave
// the content where it was: content that never appeared cannot start
// disappearing, and content that is fully on screen does not re-enter the
// appearing phase.
func (v Visibility) Transition(target Visibility) ([]LifecycleEvent, Visibility) {
	events := LifecycleEvents(v, target)
	switch {
	case v == Disappeared && target == Disappearing:
		return events, Disappeared
	case v == Appeared && target == Appearing:
		return events, Appeared
	}
	return events, target
}
