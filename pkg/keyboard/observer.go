// Package keyboard tracks the software keyboard frame and tells interested
// hosts when it is about to change.
//
// An [Observer] is constructed by the application and injected into every
// presentation engine that wants keyboard avoidance; there is no process-wide
// instance.
package keyboard

import (
	"sync"
	"time"

	"github.com/go-drift/present/pkg/animation"
	"github.com/go-drift/present/pkg/graphics"
)

// Frame is the keyboard's frame in the coordinate space of the screen.
type Frame struct {
	Rect    graphics.Rect
	Visible bool
}

// Change describes an upcoming keyboard frame change and the system
// animation that will carry it out.
type Change struct {
	Frame    Frame
	Duration time.Duration
	Curve    animation.Curve
}

// Delegate receives keyboard frame changes.
type Delegate interface {
	KeyboardFrameWillChange(change Change)
}

// DelegateFunc adapts a function to the Delegate interface.
type DelegateFunc func(change Change)

// KeyboardFrameWillChange calls f(change).
func (f DelegateFunc) KeyboardFrameWillChange(change Change) { f(change) }

// Observer records the latest keyboard frame and fans changes out to its
// delegates in registration order.
type Observer struct {
	mu        sync.RWMutex
	frame     Frame
	hasFrame  bool
	delegates map[int]Delegate
	order     []int
	nextID    int
	closed    bool
}

// NewObserver creates an observer with no known keyboard frame.
func NewObserver() *Observer {
	return &Observer{delegates: make(map[int]Delegate)}
}

// AddDelegate registers d and returns a function that unregisters it.
// The returned function is safe to call more than once.
func (o *Observer) AddDelegate(d Delegate) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed || d == nil {
		return func() {}
	}
	id := o.nextID
	o.nextID++
	o.delegates[id] = d
	o.order = append(o.order, id)
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if _, ok := o.delegates[id]; !ok {
			return
		}
		delete(o.delegates, id)
		for i, v := range o.order {
			if v == id {
				o.order = append(o.order[:i], o.order[i+1:]...)
				break
			}
		}
	}
}

// DelegateCount returns the number of registered delegates.
func (o *Observer) DelegateCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.delegates)
}

// CurrentFrame returns the last reported keyboard frame. ok is false until
// the platform has reported one.
func (o *Observer) CurrentFrame() (frame Frame, ok bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.frame, o.hasFrame
}

// Notify records change.Frame and forwards the change to every delegate.
// It is called by the platform bridge on the UI goroutine.
func (o *Observer) Notify(change Change) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.frame = change.Frame
	o.hasFrame = true
	delegates := make([]Delegate, 0, len(o.order))
	for _, id := range o.order {
		delegates = append(delegates, o.delegates[id])
	}
	o.mu.Unlock()

	for _, d := range delegates {
		d.KeyboardFrameWillChange(change)
	}
}

// Close drops every delegate and ignores later notifications.
func (o *Observer) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	o.delegates = make(map[int]Delegate)
	o.order = nil
}

// Overlap returns the part of the keyboard frame that covers container,
// translated into container's coordinate space. ok is false when the
// keyboard is hidden or does not overlap.
func Overlap(frame Frame, container graphics.Rect) (graphics.Rect, bool) {
	if !frame.Visible {
		return graphics.Rect{}, false
	}
	overlap := frame.Rect.Intersect(container)
	if overlap.IsEmpty() {
		return graphics.Rect{}, false
	}
	return overlap.Translate(-container.Left, -container.Top), true
}
