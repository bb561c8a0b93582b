package styles

import (
	"math"
	"time"

	"github.com/go-drift/present/pkg/animation"
	"github.com/go-drift/present/pkg/graphics"
	"github.com/go-drift/present/pkg/presentation"
)

// SheetTheme holds the visual constants of a sheet.
type SheetTheme struct {
	BorderRadius     float64
	OverlayOpacity   float64
	ShadowOpacity    float64
	ShadowRadius     float64
	HandleWidth      float64
	HandleHeight     float64
	HandleTopPadding float64
}

// DefaultSheetTheme returns default theme values.
func DefaultSheetTheme() SheetTheme {
	return SheetTheme{
		BorderRadius:     16,
		OverlayOpacity:   0.4,
		ShadowOpacity:    0.2,
		ShadowRadius:     12,
		HandleWidth:      32,
		HandleHeight:     4,
		HandleTopPadding: 8,
	}
}

// Sheet is a bottom sheet style.
type Sheet struct {
	// Height is used when the content reports no preferred size.
	// Zero means half the container.
	Height float64
	// MaxHeightFraction caps the sheet at this fraction of the space
	// between the top safe inset and the bottom edge or keyboard.
	// Zero means 0.9.
	MaxHeightFraction float64
	// Stretch is how far a drag against the dismiss direction can pull
	// the sheet taller. Zero disables the stretch.
	Stretch float64

	// EnableDrag allows swipe-down dismissal.
	EnableDrag bool
	// ShowHandle draws a grab handle decoration at the top.
	ShowHandle bool
	// UseSafeArea keeps the sheet clear of the top inset and pads its
	// content height by the bottom inset.
	UseSafeArea bool
	// AvoidsKeyboard lifts the sheet above the keyboard.
	AvoidsKeyboard bool
	// OverlayTap is what tapping the dimmed area does.
	OverlayTap presentation.OverlayTapBehavior

	// Enter times the entrance. The zero value uses a critically damped
	// spring.
	Enter presentation.Animation
	// Exit times the exit. The zero value uses 250ms ease-in.
	Exit presentation.Animation

	Theme SheetTheme
	// OnDismiss is called when the user dismisses the sheet.
	OnDismiss func()
	// OnOverlayTap is called for presentation.OverlayTapCustom.
	OnOverlayTap func()
}

// NewSheet returns a draggable, keyboard-avoiding sheet that dismisses on
// an overlay tap.
func NewSheet() *Sheet {
	return &Sheet{
		Stretch:        24,
		EnableDrag:     true,
		ShowHandle:     true,
		UseSafeArea:    true,
		AvoidsKeyboard: true,
		OverlayTap:     presentation.OverlayTapDismiss,
		Theme:          DefaultSheetTheme(),
	}
}

func (s *Sheet) bottom(ctx presentation.Context) float64 {
	if ctx.KeyboardVisible {
		return math.Min(ctx.KeyboardFrame.Top, ctx.ContainerSize.Height)
	}
	return ctx.ContainerSize.Height
}

func (s *Sheet) height(ctx presentation.Context) float64 {
	top := 0.0
	if s.UseSafeArea {
		top = ctx.SafeAreaInsets.Top
	}
	bottom := s.bottom(ctx)
	fraction := s.MaxHeightFraction
	if fraction <= 0 {
		fraction = 0.9
	}
	maxHeight := math.Max(0, (bottom-top)*fraction)

	h := s.Height
	if ctx.PreferredContentSizeKnown {
		h = ctx.PreferredContentSize.Height
		if s.UseSafeArea && !ctx.KeyboardVisible {
			h += ctx.SafeAreaInsets.Bottom
		}
	} else if h <= 0 {
		h = ctx.ContainerSize.Height / 2
	}
	return animation.Clamp(h, 0, maxHeight)
}

// DisplayValues pins the sheet to the bottom edge, or to the top of the
// keyboard while it is visible.
func (s *Sheet) DisplayValues(ctx presentation.Context) presentation.DisplayValues {
	h := s.height(ctx)
	width := ctx.ContainerSize.Width
	v := presentation.DisplayValues{
		Frame:        graphics.RectFromLTWH(0, s.bottom(ctx)-h, width, h),
		Alpha:        1,
		CornerRadius: s.Theme.BorderRadius,
		Shadow: presentation.Shadow{
			Opacity: s.Theme.ShadowOpacity,
			Radius:  s.Theme.ShadowRadius,
			Offset:  graphics.Offset{Y: -2},
		},
		OverlayOpacity: s.Theme.OverlayOpacity,
	}
	if s.ShowHandle {
		v.Decoration = presentation.Decoration{
			Frame: graphics.RectFromLTWH(
				(width-s.Theme.HandleWidth)/2, s.Theme.HandleTopPadding,
				s.Theme.HandleWidth, s.Theme.HandleHeight,
			),
			Alpha: 1,
		}
	}
	return v
}

// offscreen is the display values moved below the container with the
// overlay and shadow faded out.
func (s *Sheet) offscreen(ctx presentation.Context) presentation.DisplayValues {
	v := s.DisplayValues(ctx)
	v.Frame = v.Frame.Translate(0, ctx.ContainerSize.Height-v.Frame.Top)
	v.OverlayOpacity = 0
	v.Shadow.Opacity = 0
	return v
}

// EnterTransitionValues slides the sheet up from below the container.
func (s *Sheet) EnterTransitionValues(ctx presentation.Context) presentation.TransitionValues {
	anim := s.Enter
	if anim.IsZero() {
		spring := animation.IOSSpring()
		anim = presentation.Animation{Spring: &spring}
	}
	return presentation.TransitionValues{Values: s.offscreen(ctx), Animation: anim}
}

// ExitTransitionValues slides the sheet down below the container.
func (s *Sheet) ExitTransitionValues(ctx presentation.Context) presentation.TransitionValues {
	anim := s.Exit
	if anim.IsZero() {
		anim = presentation.Animation{Duration: 250 * time.Millisecond, Curve: animation.EaseIn}
	}
	return presentation.TransitionValues{Values: s.offscreen(ctx), Animation: anim}
}

// ReverseTransitionValues stretches the sheet upward by Stretch, keeping
// its bottom edge in place.
func (s *Sheet) ReverseTransitionValues(ctx presentation.Context) (presentation.DisplayValues, bool) {
	if s.Stretch <= 0 {
		return presentation.DisplayValues{}, false
	}
	v := s.DisplayValues(ctx)
	v.Frame.Top -= s.Stretch
	return v, true
}

// Behavior reports the sheet's input handling.
func (s *Sheet) Behavior(presentation.Context) presentation.Behavior {
	b := presentation.Behavior{
		OverlayTap:               s.OverlayTap,
		OnOverlayTap:             s.OnOverlayTap,
		OnDismiss:                s.OnDismiss,
		UsesPreferredContentSize: true,
		AvoidsKeyboard:           s.AvoidsKeyboard,
	}
	if s.EnableDrag {
		b.InteractiveDismiss = presentation.InteractiveDismissSwipeDown
	}
	return b
}
