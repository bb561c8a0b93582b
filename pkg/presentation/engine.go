package presentation

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/go-drift/present/pkg/graphics"
	"github.com/go-drift/present/pkg/keyboard"
)

// Container describes the surface the engine presents into.
type Container struct {
	// Origin is the container's position in screen coordinates, used to
	// map the keyboard frame into the container.
	Origin         graphics.Offset
	Size           graphics.Size
	SafeAreaInsets graphics.EdgeInsets
	Scale          float64
}

func (c Container) bounds() graphics.Rect {
	return graphics.RectFromOriginSize(c.Origin, c.Size)
}

// TraceEvent reports one transition state change.
type TraceEvent struct {
	ID      uuid.UUID
	Content Content
	From    TransitionState
	To      TransitionState
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithTuning overrides the interactive model.
func WithTuning(t Tuning) Option {
	return func(e *Engine) { e.tuning = t.Normalized() }
}

// WithKeyboard subscribes the engine to keyboard frame changes.
func WithKeyboard(o *keyboard.Observer) Option {
	return func(e *Engine) { e.keyboard = o }
}

// WithTrace calls fn for every transition state change.
func WithTrace(fn func(TraceEvent)) Option {
	return func(e *Engine) { e.trace = fn }
}

// Engine owns the presentations for one container. It reconciles the
// requested items into presentations, drives their transitions and routes
// gestures, keyboard changes and size changes to them.
//
// Engine is not safe for concurrent use. All methods must be called from
// the goroutine that steps the animation tickers.
type Engine struct {
	logger *slog.Logger
	tuning Tuning
	trace  func(TraceEvent)

	keyboard       *keyboard.Observer
	removeKeyboard func()
	keyboardFrame  keyboard.Frame
	// lastKeyboardChange times adaptations that start after the keyboard
	// notification, such as the end of an entrance.
	lastKeyboardChange keyboard.Change

	container           Container
	containerVisibility Visibility

	items         []Item
	presentations []*Presentation
	registry      *registry

	needsUpdate bool
	isUpdating  bool
	closed      bool
}

// NewEngine creates an engine. The container starts out empty and
// disappeared; presentations animate only once both are set.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger:   slog.Default(),
		tuning:   DefaultTuning(),
		registry: newRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.keyboard != nil {
		if frame, ok := e.keyboard.CurrentFrame(); ok {
			e.keyboardFrame = frame
			e.lastKeyboardChange = keyboard.Change{Frame: frame}
		}
		e.removeKeyboard = e.keyboard.AddDelegate(e)
	}
	return e
}

// Close tears down every presentation and unsubscribes from the keyboard.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	if e.removeKeyboard != nil {
		e.removeKeyboard()
		e.removeKeyboard = nil
	}
	for _, p := range e.presentations {
		e.registry.remove(p.id)
		p.teardown()
	}
	e.presentations = nil
	e.items = nil
}

// Tuning returns the engine's interactive model.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// Items returns the requested items.
func (e *Engine) Items() []Item {
	return slices.Clone(e.items)
}

// SetItems replaces the requested items and reconciles immediately.
func (e *Engine) SetItems(items []Item) {
	if e.closed {
		return
	}
	e.items = slices.Clone(items)
	e.SetNeedsUpdate()
	e.UpdateIfNeeded()
}

// Presentations returns the current presentations, bottom to top.
func (e *Engine) Presentations() []*Presentation {
	return slices.Clone(e.presentations)
}

// Lookup resolves a presentation ID. It fails once the presentation has
// been removed.
func (e *Engine) Lookup(id uuid.UUID) (*Presentation, bool) {
	return e.registry.lookup(id)
}

// PresentationFor returns the presentation showing content.
func (e *Engine) PresentationFor(content Content) (*Presentation, bool) {
	for _, p := range e.presentations {
		if p.Content() == content {
			return p, true
		}
	}
	return nil, false
}

// Container returns the current container.
func (e *Engine) Container() Container {
	return e.container
}

// SetContainer updates the container geometry and lays out.
func (e *Engine) SetContainer(c Container) {
	e.container = c
	e.Layout()
}

// ContainerVisibility returns the container's visibility.
func (e *Engine) ContainerVisibility() Visibility {
	return e.containerVisibility
}

// SetContainerVisibility forwards the container's own appearance to every
// presentation and lays out, which enters presentations that were waiting
// for the container.
func (e *Engine) SetContainerVisibility(v Visibility) {
	if e.closed || e.containerVisibility == v {
		return
	}
	e.containerVisibility = v
	for _, p := range slices.Clone(e.presentations) {
		p.setContainerVisibility(v)
	}
	e.Layout()
}

func (e *Engine) isLaidOut() bool {
	return !e.container.Size.IsEmpty()
}

// canAnimate reports whether transitions should animate. Before the
// container is laid out and visible, presentations snap.
func (e *Engine) canAnimate() bool {
	return e.isLaidOut() && e.containerVisibility != Disappeared
}

// SetNeedsUpdate marks the items as needing reconciliation.
func (e *Engine) SetNeedsUpdate() {
	e.needsUpdate = true
}

// UpdateIfNeeded reconciles if SetNeedsUpdate was called. Requests made
// while an update is running are folded into that update.
func (e *Engine) UpdateIfNeeded() {
	if !e.needsUpdate || e.isUpdating || e.closed {
		return
	}
	e.isUpdating = true
	defer func() { e.isUpdating = false }()
	for e.needsUpdate {
		e.needsUpdate = false
		e.update()
	}
}

func (e *Engine) update() {
	requested := make(map[Content]struct{}, len(e.items))
	for _, item := range e.items {
		requested[item.Content] = struct{}{}
	}

	// Parked presentations that are no longer requested go first so that
	// reconciliation does not see them.
	kept := e.presentations[:0:0]
	for _, p := range e.presentations {
		if _, ok := requested[p.Content()]; !ok && p.state.Kind() == StatePendingRemoval {
			e.discard(p)
			continue
		}
		kept = append(kept, p)
	}

	e.presentations = Reconcile(kept, e.items, e.newPresentation)

	for _, p := range slices.Clone(e.presentations) {
		_, wanted := requested[p.Content()]
		switch p.state.Kind() {
		case StatePending:
			if e.canAnimate() {
				e.enter(p)
			}
		case StatePendingExit:
			if wanted {
				p.SetTransitionState(Presented())
				e.layoutPresentation(p)
			} else {
				e.exit(p)
			}
		case StateExiting:
			if wanted {
				e.revive(p)
			}
		case StatePendingRemoval:
			if wanted {
				p.SetTransitionState(Pending())
				if e.canAnimate() {
					e.enter(p)
				}
			}
		}
	}
}

func (e *Engine) newPresentation(item Item) *Presentation {
	initial := Presented()
	if e.canAnimate() {
		initial = Pending()
	}
	p := newPresentation(item, initial, e.containerVisibility, e.logger)
	p.onTransition = e.didTransition
	e.registry.add(p)
	if n, ok := item.Content.(PreferredSizeNotifier); ok {
		id := p.id
		p.removeSizeListener = n.AddPreferredSizeListener(func() {
			e.preferredSizeDidChange(id)
		})
	}
	if initial.Kind() == StatePresented && e.isLaidOut() {
		e.layoutPresentation(p)
	}
	e.logger.Debug("presentation created", "presentation", p.id, "state", initial)
	return p
}

func (e *Engine) didTransition(p *Presentation, from, to TransitionState) {
	e.logger.Debug("transition", "presentation", p.id, "from", from, "to", to)
	if e.trace != nil {
		e.trace(TraceEvent{ID: p.id, Content: p.Content(), From: from, To: to})
	}
}

// discard removes p from the engine and tears it down.
func (e *Engine) discard(p *Presentation) {
	e.registry.remove(p.id)
	p.teardown()
	e.logger.Debug("presentation removed", "presentation", p.id)
}

func (e *Engine) remove(p *Presentation) {
	if i := slices.Index(e.presentations, p); i >= 0 {
		e.presentations = slices.Delete(e.presentations, i, i+1)
	}
	e.discard(p)
}

func (e *Engine) isRequested(c Content) bool {
	for _, item := range e.items {
		if item.Content == c {
			return true
		}
	}
	return false
}

// tracks reports whether p is a live presentation of this engine.
func (e *Engine) tracks(p *Presentation) bool {
	if p == nil || p.tornDown {
		return false
	}
	q, ok := e.registry.lookup(p.id)
	return ok && q == p
}

func (e *Engine) preferredSizeDidChange(id uuid.UUID) {
	p, ok := e.Lookup(id)
	if !ok {
		return
	}
	p.invalidatePreferredSize()
	e.measure(p)
	e.layoutPresentation(p)
}

// context builds the style input for p.
func (e *Engine) context(p *Presentation, interactive bool) Context {
	ctx := Context{
		ContainerSize:  e.container.Size,
		SafeAreaInsets: e.container.SafeAreaInsets,
		Scale:          e.container.Scale,
		IsInteractive:  interactive,
	}
	if p.hasValues {
		ctx.CurrentFrame = p.values.Frame
		ctx.CurrentFrameKnown = true
	}
	if p.preferredSizeKnown {
		ctx.PreferredContentSize = p.preferredSize
		ctx.PreferredContentSizeKnown = true
	}
	if p.Style() != nil && p.Style().Behavior(ctx).AvoidsKeyboard {
		if overlap, ok := keyboard.Overlap(e.keyboardFrame, e.container.bounds()); ok {
			ctx.KeyboardFrame = overlap
			ctx.KeyboardVisible = true
		}
	}
	return ctx
}

func (e *Engine) behavior(p *Presentation) Behavior {
	return p.Style().Behavior(e.context(p, false))
}
