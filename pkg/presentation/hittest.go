package presentation

import (
	"github.com/google/uuid"

	"github.com/go-drift/present/pkg/graphics"
)

// HitKind says which part of a presentation a point landed on.
type HitKind int

const (
	// HitNone means the point passes through every presentation.
	HitNone HitKind = iota
	// HitContent means the point is inside a presentation's frame.
	HitContent
	// HitOverlay means the point is on a presentation's dimming overlay.
	HitOverlay
)

// Hit is the result of a hit test.
type Hit struct {
	Kind HitKind
	// ID identifies the presentation hit. It is the zero UUID for HitNone.
	ID uuid.UUID
}

// HitTest finds the topmost presentation that takes a touch at point, in
// container coordinates. Presentations that pass content touches through
// are skipped over their frame, and overlays with pass-through taps are
// skipped entirely, as are presentations on their way out.
func (e *Engine) HitTest(point graphics.Offset) Hit {
	for i := len(e.presentations) - 1; i >= 0; i-- {
		p := e.presentations[i]
		switch p.state.Kind() {
		case StatePending, StatePendingExit, StateExiting, StatePendingRemoval:
			continue
		}
		if !p.hasValues {
			continue
		}
		behavior := e.behavior(p)
		if p.values.Frame.Contains(point) {
			if behavior.PassesThroughContentTouches {
				continue
			}
			return Hit{Kind: HitContent, ID: p.id}
		}
		if behavior.OverlayTap == OverlayTapPassThrough {
			continue
		}
		return Hit{Kind: HitOverlay, ID: p.id}
	}
	return Hit{}
}

// HandleOverlayTap applies the overlay-tap behavior of the presentation
// with id. It reports whether the tap was consumed. Taps on presentations
// that are not yet or no longer on screen are ignored, as in HitTest.
func (e *Engine) HandleOverlayTap(id uuid.UUID) bool {
	p, ok := e.Lookup(id)
	if !ok {
		return false
	}
	switch p.state.Kind() {
	case StatePending, StatePendingExit, StateExiting, StatePendingRemoval:
		return false
	}
	behavior := e.behavior(p)
	switch behavior.OverlayTap {
	case OverlayTapPassThrough:
		return false
	case OverlayTapDismiss:
		if behavior.OnDismiss != nil {
			behavior.OnDismiss()
		}
	case OverlayTapCustom:
		if behavior.OnOverlayTap != nil {
			behavior.OnOverlayTap()
		}
	}
	return true
}
