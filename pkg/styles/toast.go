package styles

import (
	"time"

	"github.com/go-drift/present/pkg/animation"
	"github.com/go-drift/present/pkg/graphics"
	"github.com/go-drift/present/pkg/presentation"
)

// Toast is a small card floating above the bottom edge. Touches outside the
// card pass through to whatever is below.
type Toast struct {
	// Height is used when the content reports no preferred size.
	// Zero means 56.
	Height float64
	// Margin separates the card from the container edges. Zero means 16.
	Margin       float64
	BorderRadius float64

	// EnableDrag allows swipe-down dismissal.
	EnableDrag bool
	// Duration times both the entrance and the exit. Zero means 200ms.
	Duration time.Duration
	// OnDismiss is called when the user swipes the toast away.
	OnDismiss func()
}

// NewToast returns a draggable toast.
func NewToast() *Toast {
	return &Toast{BorderRadius: 12, EnableDrag: true}
}

func (t *Toast) margin() float64 {
	if t.Margin <= 0 {
		return 16
	}
	return t.Margin
}

func (t *Toast) animation() presentation.Animation {
	d := t.Duration
	if d <= 0 {
		d = 200 * time.Millisecond
	}
	return presentation.Animation{Duration: d, Curve: animation.EaseOut}
}

// DisplayValues places the card above the bottom safe inset, or above the
// keyboard while it is visible.
func (t *Toast) DisplayValues(ctx presentation.Context) presentation.DisplayValues {
	m := t.margin()
	h := t.Height
	if ctx.PreferredContentSizeKnown {
		h = ctx.PreferredContentSize.Height
	} else if h <= 0 {
		h = 56
	}
	bottom := ctx.ContainerSize.Height - ctx.SafeAreaInsets.Bottom
	if ctx.KeyboardVisible && ctx.KeyboardFrame.Top < bottom {
		bottom = ctx.KeyboardFrame.Top
	}
	return presentation.DisplayValues{
		Frame:        graphics.RectFromLTWH(m, bottom-m-h, ctx.ContainerSize.Width-2*m, h),
		Alpha:        1,
		CornerRadius: t.BorderRadius,
		Shadow:       presentation.Shadow{Opacity: 0.15, Radius: 8, Offset: graphics.Offset{Y: 2}},
	}
}

func (t *Toast) hidden(ctx presentation.Context) presentation.DisplayValues {
	v := t.DisplayValues(ctx)
	v.Frame = v.Frame.Translate(0, ctx.ContainerSize.Height-v.Frame.Top)
	v.Alpha = 0
	v.Shadow.Opacity = 0
	return v
}

// EnterTransitionValues fades the card in from below the container.
func (t *Toast) EnterTransitionValues(ctx presentation.Context) presentation.TransitionValues {
	return presentation.TransitionValues{Values: t.hidden(ctx), Animation: t.animation()}
}

// ExitTransitionValues fades the card out below the container.
func (t *Toast) ExitTransitionValues(ctx presentation.Context) presentation.TransitionValues {
	return presentation.TransitionValues{Values: t.hidden(ctx), Animation: t.animation()}
}

// ReverseTransitionValues reports false: a toast does not stretch.
func (t *Toast) ReverseTransitionValues(presentation.Context) (presentation.DisplayValues, bool) {
	return presentation.DisplayValues{}, false
}

// Behavior reports the toast's input handling.
func (t *Toast) Behavior(presentation.Context) presentation.Behavior {
	b := presentation.Behavior{
		OverlayTap:               presentation.OverlayTapPassThrough,
		OnDismiss:                t.OnDismiss,
		UsesPreferredContentSize: true,
		AvoidsKeyboard:           true,
	}
	if t.EnableDrag {
		b.InteractiveDismiss = presentation.InteractiveDismissSwipeDown
	}
	return b
}
