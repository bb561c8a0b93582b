package animation

import (
	"github.com/go-drift/present/pkg/graphics"
)

// Tween interpolates from Begin to End. Spring curves may evaluate it
// slightly outside [0, 1].
type Tween[T any] struct {
	Begin T
	End   T
	// Lerp returns the value at t. A nil Lerp jumps straight to End.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpFloat64 interpolates linearly, returning a and b exactly at t == 0
// and t == 1.
func LerpFloat64(a, b, t float64) float64 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return a + (b-a)*t
}

// LerpOffset interpolates each axis.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{X: LerpFloat64(a.X, b.X, t), Y: LerpFloat64(a.Y, b.Y, t)}
}

// LerpRect interpolates each edge.
func LerpRect(a, b graphics.Rect, t float64) graphics.Rect {
	return graphics.Rect{
		Left:   LerpFloat64(a.Left, b.Left, t),
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
	}
}
