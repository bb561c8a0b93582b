package keyboard

import (
	"testing"
	"time"

	"github.com/go-drift/present/pkg/graphics"
)

func TestObserver_NotifiesDelegatesInOrder(t *testing.T) {
	o := NewObserver()
	var calls []string
	o.AddDelegate(DelegateFunc(func(Change) { calls = append(calls, "a") }))
	o.AddDelegate(DelegateFunc(func(Change) { calls = append(calls, "b") }))

	frame := Frame{Rect: graphics.RectFromLTWH(0, 500, 400, 300), Visible: true}
	o.Notify(Change{Frame: frame, Duration: 250 * time.Millisecond})

	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("calls = %v, want [a b]", calls)
	}
	got, ok := o.CurrentFrame()
	if !ok || got != frame {
		t.Errorf("CurrentFrame = %v, %v", got, ok)
	}
}

func TestObserver_RemoveDelegate(t *testing.T) {
	o := NewObserver()
	count := 0
	remove := o.AddDelegate(DelegateFunc(func(Change) { count++ }))
	keep := o.AddDelegate(DelegateFunc(func(Change) {}))
	defer keep()

	remove()
	remove()
	o.Notify(Change{})

	if count != 0 {
		t.Errorf("removed delegate called %d times", count)
	}
	if o.DelegateCount() != 1 {
		t.Errorf("DelegateCount = %d, want 1", o.DelegateCount())
	}
}

func TestObserver_Close(t *testing.T) {
	o := NewObserver()
	called := false
	o.AddDelegate(DelegateFunc(func(Change) { called = true }))
	o.Close()
	o.Notify(Change{Frame: Frame{Visible: true}})
	if called {
		t.Error("closed observer must not notify")
	}
	if _, ok := o.CurrentFrame(); ok {
		t.Error("closed observer must not record frames")
	}
}

func TestOverlap(t *testing.T) {
	container := graphics.RectFromLTWH(0, 100, 400, 600)
	frame := Frame{Rect: graphics.RectFromLTWH(0, 500, 400, 300), Visible: true}

	got, ok := Overlap(frame, container)
	if !ok {
		t.Fatal("expected overlap")
	}
	want := graphics.RectFromLTWH(0, 400, 400, 200)
	if got != want {
		t.Errorf("Overlap = %v, want %v", got, want)
	}

	if _, ok := Overlap(Frame{Rect: frame.Rect}, container); ok {
		t.Error("hidden keyboard must not overlap")
	}
}
