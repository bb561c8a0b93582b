package presentation

import (
	"time"

	"github.com/go-drift/present/pkg/animation"
	"github.com/go-drift/present/pkg/graphics"
)

// Context is the input a Style computes its values from. It is a plain
// value; styles must not retain it.
type Context struct {
	// ContainerSize is the size of the surface hosting the presentations.
	ContainerSize graphics.Size
	// SafeAreaInsets are the container's unobstructed margins.
	SafeAreaInsets graphics.EdgeInsets
	// Scale is the display's pixel ratio.
	Scale float64

	// KeyboardFrame is the part of the keyboard overlapping the container,
	// in container coordinates. It is only set for styles that avoid the
	// keyboard, and only while the keyboard is visible.
	KeyboardFrame   graphics.Rect
	KeyboardVisible bool

	// PreferredContentSize is the content's measured preferred size.
	PreferredContentSize      graphics.Size
	PreferredContentSizeKnown bool

	// CurrentFrame is where the presentation is currently drawn.
	CurrentFrame      graphics.Rect
	CurrentFrameKnown bool

	// IsInteractive is true while a gesture is driving the presentation,
	// and when computing the exit of a gesture-committed dismissal.
	IsInteractive bool
	// Velocity is the release velocity of the gesture that committed a
	// dismissal, in points per second.
	Velocity graphics.Offset
}

// Shadow describes the drop shadow under the presentation.
type Shadow struct {
	Opacity float64
	Radius  float64
	Offset  graphics.Offset
}

// Decoration is an optional layer drawn above the content, such as a grab
// handle. Its frame is relative to the presentation frame.
type Decoration struct {
	Frame graphics.Rect
	Alpha float64
}

// DisplayValues is everything the chrome needs to draw one presentation.
// It is comparable, so unchanged values can be detected with ==.
type DisplayValues struct {
	// Frame is the presentation's frame in container coordinates.
	Frame        graphics.Rect
	Alpha        float64
	CornerRadius float64
	Shadow       Shadow
	// OverlayOpacity is the opacity of the dimming layer behind the
	// presentation.
	OverlayOpacity float64
	Decoration     Decoration
}

// LerpDisplayValues interpolates every field of two DisplayValues.
func LerpDisplayValues(a, b DisplayValues, t float64) DisplayValues {
	lerp := animation.LerpFloat64
	return DisplayValues{
		Frame:        animation.LerpRect(a.Frame, b.Frame, t),
		Alpha:        lerp(a.Alpha, b.Alpha, t),
		CornerRadius: lerp(a.CornerRadius, b.CornerRadius, t),
		Shadow: Shadow{
			Opacity: lerp(a.Shadow.Opacity, b.Shadow.Opacity, t),
			Radius:  lerp(a.Shadow.Radius, b.Shadow.Radius, t),
			Offset:  animation.LerpOffset(a.Shadow.Offset, b.Shadow.Offset, t),
		},
		OverlayOpacity: lerp(a.OverlayOpacity, b.OverlayOpacity, t),
		Decoration: Decoration{
			Frame: animation.LerpRect(a.Decoration.Frame, b.Decoration.Frame, t),
			Alpha: lerp(a.Decoration.Alpha, b.Decoration.Alpha, t),
		},
	}
}

// Animation describes the timing of a transition. A non-nil Spring takes
// precedence over Duration and Curve.
type Animation struct {
	Duration time.Duration
	Curve    animation.Curve
	Spring   *animation.SpringDescription
}

// IsZero reports whether a specifies no timing at all.
func (a Animation) IsZero() bool {
	return a.Spring == nil && a.Duration == 0 && a.Curve == nil
}

// newAnimator builds an animator for a. initialVelocity is relative to the
// animated distance and only applies to springs.
func (a Animation) newAnimator(initialVelocity float64) *animation.PropertyAnimator {
	if a.Spring != nil {
		return animation.NewSpringAnimator(*a.Spring, initialVelocity)
	}
	return animation.NewPropertyAnimator(a.Duration, a.Curve)
}

// TransitionValues pairs the values at one end of a transition with the
// timing used to animate toward or away from them.
type TransitionValues struct {
	Values    DisplayValues
	Animation Animation
}
