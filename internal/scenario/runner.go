// Package scenario runs scripted presentation sequences against a stepped
// clock and records every transition state change.
package scenario

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-drift/present/pkg/animation"
	"github.com/go-drift/present/pkg/content"
	"github.com/go-drift/present/pkg/graphics"
	"github.com/go-drift/present/pkg/keyboard"
	"github.com/go-drift/present/pkg/presentation"
	"github.com/go-drift/present/pkg/styles"
)

// FrameInterval is the simulated frame length.
const FrameInterval = 16 * time.Millisecond

// settleTimeout bounds Settle in simulated time.
const settleTimeout = 10 * time.Second

// Record is one transition observed during a run.
type Record struct {
	At    time.Duration
	Label string
	From  presentation.StateKind
	To    presentation.StateKind
	Frame graphics.Rect
}

// stepClock is an animation.Clock advanced only by the runner.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Runner owns an engine, a keyboard observer and the animation clock for
// the length of one run. Runs must not overlap: the clock is process-wide.
type Runner struct {
	Engine   *presentation.Engine
	Keyboard *keyboard.Observer

	clock     *stepClock
	prevClock animation.Clock
	elapsed   time.Duration
	records   []Record
	labels    map[presentation.Content]string
	contents  map[string]*content.Text
}

// NewRunner installs a stepped clock and builds an engine over a visible
// container of the given size.
func NewRunner(size graphics.Size, logger *slog.Logger, tuning presentation.Tuning) *Runner {
	r := &Runner{
		Keyboard: keyboard.NewObserver(),
		clock:    &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		labels:   make(map[presentation.Content]string),
		contents: make(map[string]*content.Text),
	}
	r.prevClock = animation.SetClock(r.clock)
	r.Engine = presentation.NewEngine(
		presentation.WithLogger(logger),
		presentation.WithTuning(tuning),
		presentation.WithKeyboard(r.Keyboard),
		presentation.WithTrace(r.trace),
	)
	r.Engine.SetContainer(presentation.Container{Size: size, Scale: 1})
	r.Engine.SetContainerVisibility(presentation.Appeared)
	return r
}

// Close tears the engine down and restores the previous clock.
func (r *Runner) Close() {
	r.Engine.Close()
	r.Keyboard.Close()
	if r.prevClock != nil {
		animation.SetClock(r.prevClock)
		r.prevClock = nil
	}
}

// Records returns the transitions recorded so far.
func (r *Runner) Records() []Record {
	return r.records
}

// Elapsed returns the simulated time since the runner was created.
func (r *Runner) Elapsed() time.Duration {
	return r.elapsed
}

func (r *Runner) trace(ev presentation.TraceEvent) {
	label := r.labels[ev.Content]
	var frame graphics.Rect
	if p, ok := r.Engine.Lookup(ev.ID); ok {
		frame = p.Frame()
	}
	r.records = append(r.records, Record{
		At:    r.elapsed,
		Label: label,
		From:  ev.From.Kind(),
		To:    ev.To.Kind(),
		Frame: frame,
	})
}

// Content returns the text content registered under label, creating it on
// first use.
func (r *Runner) Content(label string) *content.Text {
	if c, ok := r.contents[label]; ok {
		return c
	}
	c := content.NewText(label)
	r.contents[label] = c
	r.labels[c] = label
	return c
}

// Label returns the label c was registered under.
func (r *Runner) Label(c presentation.Content) string {
	return r.labels[c]
}

// Present appends label with style to the requested items.
func (r *Runner) Present(label string, style presentation.Style) {
	r.Engine.SetItems(append(r.Engine.Items(), presentation.NewItem(r.Content(label), style)))
}

// Dismiss removes label from the requested items.
func (r *Runner) Dismiss(label string) {
	r.Engine.SetItems(presentation.Without(r.Engine.Items(), r.Content(label)))
}

// Sheet returns a default sheet whose swipe-down dismissal removes label.
func (r *Runner) Sheet(label string) *styles.Sheet {
	s := styles.NewSheet()
	s.OnDismiss = func() { r.Dismiss(label) }
	return s
}

// Presentation returns the live presentation for label.
func (r *Runner) Presentation(label string) (*presentation.Presentation, bool) {
	return r.Engine.PresentationFor(r.Content(label))
}

// Pump advances the clock by d and steps the tickers once.
func (r *Runner) Pump(d time.Duration) {
	r.clock.advance(d)
	r.elapsed += d
	animation.StepTickers()
}

// Settle pumps frames until no animation is running.
func (r *Runner) Settle() error {
	var spent time.Duration
	r.Pump(0)
	for animation.HasActiveTickers() {
		if spent >= settleTimeout {
			return fmt.Errorf("animations did not settle within %s", settleTimeout)
		}
		r.Pump(FrameInterval)
		spent += FrameInterval
	}
	return nil
}

// Drag sends a pan gesture to label: a begin, one change per step of
// translation, and a release at velocity (points per second).
func (r *Runner) Drag(label string, translation []float64, velocity float64) error {
	p, ok := r.Presentation(label)
	if !ok {
		return fmt.Errorf("%s is not presented", label)
	}
	r.Engine.HandlePan(p, presentation.PanGesture{Phase: presentation.GestureBegan})
	var last float64
	for _, dy := range translation {
		last = dy
		r.Engine.HandlePan(p, presentation.PanGesture{
			Phase:       presentation.GestureChanged,
			Translation: graphics.Offset{Y: dy},
		})
		r.Pump(FrameInterval)
	}
	r.Engine.HandlePan(p, presentation.PanGesture{
		Phase:       presentation.GestureEnded,
		Translation: graphics.Offset{Y: last},
		Velocity:    graphics.Offset{Y: velocity},
	})
	return nil
}

// ShowKeyboard reports a keyboard of height points rising over d.
func (r *Runner) ShowKeyboard(height float64, d time.Duration) {
	size := r.Engine.Container().Size
	r.Keyboard.Notify(keyboard.Change{
		Frame: keyboard.Frame{
			Rect:    graphics.RectFromLTWH(0, size.Height-height, size.Width, height),
			Visible: true,
		},
		Duration: d,
	})
}

// HideKeyboard reports the keyboard leaving over d.
func (r *Runner) HideKeyboard(d time.Duration) {
	frame, _ := r.Keyboard.CurrentFrame()
	r.Keyboard.Notify(keyboard.Change{
		Frame:    keyboard.Frame{Rect: frame.Rect, Visible: false},
		Duration: d,
	})
}

// Rotate swaps the container's width and height.
func (r *Runner) Rotate() {
	size := r.Engine.Container().Size
	r.Engine.TransitionToSize(graphics.Size{Width: size.Height, Height: size.Width}, presentation.ImmediateCoordinator{})
}
