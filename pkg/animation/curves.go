package animation

import "math"

// Curve maps linear progress t in [0, 1] to eased progress. Springs may
// overshoot 1 before settling.
type Curve func(t float64) float64

// LinearCurve returns t unchanged.
func LinearCurve(t float64) float64 {
	return t
}

// Bezier curves, named after their CSS equivalents.
var (
	Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)
	// EaseIn accelerates. Exits use it.
	EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)
	// EaseOut decelerates. Entrances use it.
	EaseOut   = CubicBezier(0.0, 0.0, 0.2, 1.0)
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

// KeyboardCurve approximates the curve the system keyboard animates with.
// Hosts that receive a platform curve should pass that instead.
var KeyboardCurve = CubicBezier(0.17, 0.59, 0.4, 0.77)

const bezierEpsilon = 1e-7

// unitBezier is one axis of a cubic bezier from 0 to 1, stored as the
// polynomial a*s³ + b*s² + c*s.
type unitBezier struct {
	a, b, c float64
}

func newUnitBezier(p1, p2 float64) unitBezier {
	c := 3 * p1
	b := 3*(p2-p1) - c
	return unitBezier{a: 1 - c - b, b: b, c: c}
}

func (u unitBezier) at(s float64) float64 {
	return ((u.a*s+u.b)*s + u.c) * s
}

func (u unitBezier) slope(s float64) float64 {
	return (3*u.a*s+2*u.b)*s + u.c
}

// solve returns the parameter s in [0, 1] where the axis reaches v. Newton
// iteration usually converges in a few steps; bisection covers the flat
// spots where it cannot.
func (u unitBezier) solve(v float64) float64 {
	s := v
	for range 8 {
		diff := u.at(s) - v
		if math.Abs(diff) < bezierEpsilon {
			return Clamp(s, 0, 1)
		}
		d := u.slope(s)
		if math.Abs(d) < bezierEpsilon {
			break
		}
		s -= diff / d
	}

	lo, hi := 0.0, 1.0
	s = Clamp(s, 0, 1)
	for range 20 {
		diff := u.at(s) - v
		if math.Abs(diff) < bezierEpsilon {
			break
		}
		if diff > 0 {
			hi = s
		} else {
			lo = s
		}
		s = (lo + hi) / 2
	}
	return s
}

// CubicBezier returns the easing curve with control points (x1, y1) and
// (x2, y2), as CSS cubic-bezier() defines it.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	xs, ys := newUnitBezier(x1, x2), newUnitBezier(y1, y2)
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return ys.at(xs.solve(t))
	}
}

// RubberBand maps a raw drag fraction onto a resisting ease-out scrub so a
// drag against the dismissal direction feels elastic. The result stays in
// [0, 1] and grows ever more slowly as raw grows.
func RubberBand(raw float64) float64 {
	inv := 1 - Clamp(raw, 0, 1)
	return 1 - inv*inv*inv
}

// Clamp restricts value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}
