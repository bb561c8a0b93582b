package presentation

// Style decides where and how a presentation is drawn. Styles must be pure
// functions of the Context they are given.
type Style interface {
	// DisplayValues returns the resting values.
	DisplayValues(ctx Context) DisplayValues
	// EnterTransitionValues returns the values an entering presentation
	// starts from and the animation that carries it to rest.
	EnterTransitionValues(ctx Context) TransitionValues
	// ExitTransitionValues returns the values an exiting presentation ends
	// at and the animation that carries it there.
	ExitTransitionValues(ctx Context) TransitionValues
	// ReverseTransitionValues returns the values a drag against the dismiss
	// direction stretches toward. ok is false when the style has no
	// inverse direction, in which case such drags hit a hard stop.
	ReverseTransitionValues(ctx Context) (values DisplayValues, ok bool)
	// Behavior returns how the presentation reacts to input.
	Behavior(ctx Context) Behavior
}

// OverlayTapBehavior controls what a tap on the dimming overlay does.
type OverlayTapBehavior int

const (
	// OverlayTapDisabled swallows the tap.
	OverlayTapDisabled OverlayTapBehavior = iota
	// OverlayTapDismiss calls Behavior.OnDismiss.
	OverlayTapDismiss
	// OverlayTapPassThrough lets the tap reach whatever is below.
	OverlayTapPassThrough
	// OverlayTapCustom calls Behavior.OnOverlayTap.
	OverlayTapCustom
)

func (b OverlayTapBehavior) String() string {
	switch b {
	case OverlayTapDisabled:
		return "disabled"
	case OverlayTapDismiss:
		return "dismiss"
	case OverlayTapPassThrough:
		return "passThrough"
	case OverlayTapCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// InteractiveDismissBehavior controls whether a drag can dismiss the
// presentation.
type InteractiveDismissBehavior int

const (
	InteractiveDismissDisabled InteractiveDismissBehavior = iota
	// InteractiveDismissSwipeDown dismisses on a downward drag and calls
	// Behavior.OnDismiss when the drag commits.
	InteractiveDismissSwipeDown
)

// Behavior groups the input handling of a presentation.
type Behavior struct {
	OverlayTap OverlayTapBehavior
	// OnOverlayTap is called for OverlayTapCustom.
	OnOverlayTap func()

	InteractiveDismiss InteractiveDismissBehavior
	// OnDismiss is called when the user dismisses the presentation by
	// tapping the overlay or committing a drag. The owner is expected to
	// remove the item.
	OnDismiss func()

	// UsesPreferredContentSize asks the engine to measure the content
	// before laying it out.
	UsesPreferredContentSize bool
	// AvoidsKeyboard makes the engine pass the keyboard frame in the
	// Context and re-lay out when the keyboard moves.
	AvoidsKeyboard bool
	// PassesThroughContentTouches lets touches on the presentation's own
	// frame reach whatever is below.
	PassesThroughContentTouches bool
}
