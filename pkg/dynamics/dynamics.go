// Package dynamics projects where a decelerating gesture comes to rest.
//
// A released drag keeps moving and slows down at a constant deceleration
// rate per millisecond. Deciding whether a release should commit a dismissal
// uses the projected resting position, not the position at release.
package dynamics

import (
	"github.com/go-drift/present/pkg/errors"
	"github.com/go-drift/present/pkg/graphics"
)

const (
	// DecelerationRateNormal is the rate scroll views decelerate at.
	DecelerationRateNormal = 0.998
	// DecelerationRateFast stops motion sooner.
	DecelerationRateFast = 0.99
)

// ProjectedDistance returns how far a gesture moving at initialVelocity
// (points per second) travels before coming to rest when it decelerates at
// decelerationRate per millisecond.
//
// decelerationRate must lie strictly between 0 and 1; anything else is a
// programmer error and panics with an *errors.InvariantError.
func ProjectedDistance(initialVelocity, decelerationRate float64) float64 {
	if !(decelerationRate > 0 && decelerationRate < 1) {
		errors.Invariant("dynamics.ProjectedDistance", "deceleration rate %v outside (0, 1)", decelerationRate)
	}
	return initialVelocity / ((1000 / decelerationRate) - 1000)
}

// ProjectedOffset projects each axis of velocity independently.
func ProjectedOffset(velocity graphics.Offset, decelerationRate float64) graphics.Offset {
	return graphics.Offset{
		X: ProjectedDistance(velocity.X, decelerationRate),
		Y: ProjectedDistance(velocity.Y, decelerationRate),
	}
}

// ProjectedFrame offsets from by the projected distance along each axis.
func ProjectedFrame(from graphics.Rect, velocity graphics.Offset, decelerationRate float64) graphics.Rect {
	d := ProjectedOffset(velocity, decelerationRate)
	return from.Translate(d.X, d.Y)
}
