package presentation

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-drift/present/pkg/animation"
	"github.com/go-drift/present/pkg/errors"
	"github.com/go-drift/present/pkg/graphics"
	presenttest "github.com/go-drift/present/pkg/testing"
)

var testContainer = graphics.Size{Width: 400, Height: 800}

// recordingContent records its lifecycle callbacks.
type recordingContent struct {
	name   string
	events []LifecycleEvent

	preferred    graphics.Size
	hasPreferred bool
	measured     int

	listeners map[int]func()
	nextID    int

	onEvent func(LifecycleEvent)
}

func newContent(name string) *recordingContent {
	return &recordingContent{name: name, listeners: make(map[int]func())}
}

func (c *recordingContent) record(e LifecycleEvent) {
	c.events = append(c.events, e)
	if c.onEvent != nil {
		c.onEvent(e)
	}
}

func (c *recordingContent) WillAppear()    { c.record(WillAppear) }
func (c *recordingContent) DidAppear()     { c.record(DidAppear) }
func (c *recordingContent) WillDisappear() { c.record(WillDisappear) }
func (c *recordingContent) DidDisappear()  { c.record(DidDisappear) }

func (c *recordingContent) PreferredSize(fitting graphics.Size) (graphics.Size, bool) {
	c.measured++
	if !c.hasPreferred {
		return graphics.Size{}, false
	}
	return graphics.Size{Width: fitting.Width, Height: c.preferred.Height}, true
}

func (c *recordingContent) AddPreferredSizeListener(fn func()) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

func (c *recordingContent) setPreferredHeight(h float64) {
	c.preferred = graphics.Size{Height: h}
	c.hasPreferred = true
	for _, fn := range c.listeners {
		fn()
	}
}

// sheetStyle pins a sheet of fixed height to the bottom of the container.
// It slides in from below and lifts above the keyboard when it avoids it.
type sheetStyle struct {
	height   float64
	duration time.Duration
	behavior Behavior
	reverse  bool
}

func newSheetStyle() *sheetStyle {
	return &sheetStyle{
		height:   300,
		duration: 300 * time.Millisecond,
		behavior: Behavior{
			OverlayTap:         OverlayTapDismiss,
			InteractiveDismiss: InteractiveDismissSwipeDown,
		},
	}
}

func (s *sheetStyle) sheetHeight(ctx Context) float64 {
	if s.behavior.UsesPreferredContentSize && ctx.PreferredContentSizeKnown {
		return ctx.PreferredContentSize.Height
	}
	return s.height
}

func (s *sheetStyle) DisplayValues(ctx Context) DisplayValues {
	h := s.sheetHeight(ctx)
	bottom := ctx.ContainerSize.Height
	if ctx.KeyboardVisible {
		bottom = ctx.KeyboardFrame.Top
	}
	return DisplayValues{
		Frame:          graphics.RectFromLTWH(0, bottom-h, ctx.ContainerSize.Width, h),
		Alpha:          1,
		CornerRadius:   12,
		OverlayOpacity: 0.4,
	}
}

func (s *sheetStyle) offscreen(ctx Context) DisplayValues {
	h := s.sheetHeight(ctx)
	v := s.DisplayValues(ctx)
	v.Frame = graphics.RectFromLTWH(0, ctx.ContainerSize.Height, ctx.ContainerSize.Width, h)
	v.OverlayOpacity = 0
	return v
}

func (s *sheetStyle) EnterTransitionValues(ctx Context) TransitionValues {
	return TransitionValues{Values: s.offscreen(ctx), Animation: Animation{Duration: s.duration}}
}

func (s *sheetStyle) ExitTransitionValues(ctx Context) TransitionValues {
	return TransitionValues{Values: s.offscreen(ctx), Animation: Animation{Duration: s.duration}}
}

func (s *sheetStyle) ReverseTransitionValues(ctx Context) (DisplayValues, bool) {
	if !s.reverse {
		return DisplayValues{}, false
	}
	v := s.DisplayValues(ctx)
	v.Frame = v.Frame.Translate(0, -100)
	return v, true
}

func (s *sheetStyle) Behavior(Context) Behavior {
	return s.behavior
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEngine returns an engine over a laid-out, visible container.
func newTestEngine(t *testing.T, opts ...Option) (*presenttest.Harness, *Engine) {
	t.Helper()
	h := presenttest.NewHarness(t)
	e := NewEngine(append([]Option{WithLogger(discardLogger())}, opts...)...)
	e.SetContainer(Container{Size: testContainer, Scale: 2})
	e.SetContainerVisibility(Appeared)
	t.Cleanup(e.Close)
	return h, e
}

func settle(t *testing.T, h *presenttest.Harness) {
	t.Helper()
	if err := h.PumpAndSettle(10 * time.Second); err != nil {
		t.Fatal(err)
	}
}

func mustPresentation(t *testing.T, e *Engine, c Content) *Presentation {
	t.Helper()
	p, ok := e.PresentationFor(c)
	if !ok {
		t.Fatalf("no presentation for %v", c)
	}
	return p
}

// quietHandler swallows reports so expected invariant panics stay silent.
type quietHandler struct{}

func (quietHandler) HandleError(*errors.PresentError)       {}
func (quietHandler) HandlePanic(*errors.PanicError)         {}
func (quietHandler) HandleInvariant(*errors.InvariantError) {}

func expectInvariant(t *testing.T, fn func()) {
	t.Helper()
	errors.SetHandler(quietHandler{})
	defer errors.SetHandler(nil)
	defer func() {
		t.Helper()
		r := recover()
		if _, ok := r.(*errors.InvariantError); !ok {
			t.Fatalf("recovered %v, want *errors.InvariantError", r)
		}
	}()
	fn()
}

func stoppedAnimator() *animation.PropertyAnimator {
	return animation.NewPropertyAnimator(time.Second, nil)
}

func eventsEqual(a, b []LifecycleEvent) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
