package presentation

import (
	"github.com/google/uuid"

	"github.com/go-drift/present/pkg/graphics"
)

// Surface is one drawable layer of a presentation's chrome. Surfaces refer
// back to their presentation by ID only; resolve the owner through
// [Engine.Lookup], which fails once the presentation is torn down.
type Surface struct {
	Frame        graphics.Rect
	Alpha        float64
	CornerRadius float64
	Shadow       Shadow
	Hidden       bool

	owner    uuid.UUID
	attached bool
}

// Owner returns the ID of the presentation that owns the surface.
func (s *Surface) Owner() uuid.UUID {
	return s.owner
}

// Attached reports whether the surface is part of the container.
func (s *Surface) Attached() bool {
	return s.attached
}

// Chrome is the stack of surfaces drawn for one presentation, bottom to
// top: the dimming overlay over the whole container, the shadow and clip
// container at the presentation frame, the content host, and the
// decoration. Content and Decoration frames are relative to the shadow
// container.
type Chrome struct {
	Overlay    *Surface
	Container  *Surface
	Content    *Surface
	Decoration *Surface
}

func newChrome(owner uuid.UUID) Chrome {
	surface := func() *Surface {
		return &Surface{owner: owner, attached: true, Alpha: 1}
	}
	return Chrome{
		Overlay:    surface(),
		Container:  surface(),
		Content:    surface(),
		Decoration: surface(),
	}
}

func (c Chrome) surfaces() []*Surface {
	return []*Surface{c.Overlay, c.Container, c.Content, c.Decoration}
}

// apply draws v into the chrome of a container of the given size.
func (c Chrome) apply(v DisplayValues, container graphics.Size) {
	c.Overlay.Frame = graphics.RectFromOriginSize(graphics.Offset{}, container)
	c.Overlay.Alpha = v.OverlayOpacity
	c.Overlay.Hidden = v.OverlayOpacity <= 0

	c.Container.Frame = v.Frame
	c.Container.Alpha = v.Alpha
	c.Container.CornerRadius = v.CornerRadius
	c.Container.Shadow = v.Shadow
	c.Container.Hidden = v.Alpha <= 0

	c.Content.Frame = graphics.RectFromOriginSize(graphics.Offset{}, v.Frame.Size())
	c.Content.CornerRadius = v.CornerRadius

	c.Decoration.Frame = v.Decoration.Frame
	c.Decoration.Alpha = v.Decoration.Alpha
	c.Decoration.Hidden = v.Decoration.Alpha <= 0 || v.Decoration.Frame.IsEmpty()
}

func (c Chrome) detach() {
	for _, s := range c.surfaces() {
		s.attached = false
		s.Hidden = true
	}
}
