// Package preview is an interactive terminal view of a presentation engine.
package preview

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/go-drift/present/internal/render"
	"github.com/go-drift/present/pkg/animation"
	"github.com/go-drift/present/pkg/content"
	"github.com/go-drift/present/pkg/graphics"
	"github.com/go-drift/present/pkg/keyboard"
	"github.com/go-drift/present/pkg/presentation"
	"github.com/go-drift/present/pkg/styles"
)

const (
	// dragStep is how far one arrow key press moves a drag, in points.
	dragStep = 40
	// releaseSpeed is the velocity of a released drag, in points per second.
	releaseSpeed     = 900
	keyboardHeight   = 300
	keyboardDuration = 250 * time.Millisecond
	// chromeRows is the number of rows used by the title and footer.
	chromeRows = 3
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(render.Primary)
	statusStyle = lipgloss.NewStyle().Foreground(render.Accent)
	helpStyle   = lipgloss.NewStyle().Foreground(render.Muted)
)

type tickMsg time.Time

// Options configures a Model.
type Options struct {
	Title     string
	Size      graphics.Size
	FrameRate int
	Tuning    presentation.Tuning
	Logger    *slog.Logger
}

type drag struct {
	id          uuid.UUID
	translation float64
	direction   float64
}

// Model is the bubbletea model driving the engine. Every engine call and
// ticker step happens inside Update, on the program's goroutine.
type Model struct {
	title    string
	engine   *presentation.Engine
	keyboard *keyboard.Observer
	interval time.Duration

	cols, rows int
	next       int
	labels     map[presentation.Content]string
	drag       *drag
	status     string
}

// New builds a model over a visible container.
func New(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	fps := opts.FrameRate
	if fps <= 0 {
		fps = 30
	}
	m := &Model{
		title:    opts.Title,
		keyboard: keyboard.NewObserver(),
		interval: time.Second / time.Duration(fps),
		cols:     48,
		rows:     24,
		labels:   make(map[presentation.Content]string),
		status:   "ready",
	}
	m.engine = presentation.NewEngine(
		presentation.WithLogger(opts.Logger),
		presentation.WithTuning(opts.Tuning),
		presentation.WithKeyboard(m.keyboard),
	)
	m.engine.SetContainer(presentation.Container{Size: opts.Size, Scale: 1})
	m.engine.SetContainerVisibility(presentation.Appeared)
	return m
}

// Engine returns the driven engine.
func (m *Model) Engine() *presentation.Engine {
	return m.engine
}

// Close tears the engine down.
func (m *Model) Close() {
	m.engine.Close()
	m.keyboard.Close()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys, resizes and frame ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		animation.StepTickers()
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 1)
		m.rows = max(msg.Height-chromeRows, 1)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		m.Close()
		return tea.Quit
	case "s":
		m.present("sheet", func(c presentation.Content) presentation.Style {
			s := styles.NewSheet()
			s.OnDismiss = func() { m.dismiss(c) }
			return s
		})
	case "t":
		m.present("toast", func(c presentation.Content) presentation.Style {
			t := styles.NewToast()
			t.OnDismiss = func() { m.dismiss(c) }
			return t
		})
	case "d", "esc":
		if p := m.top(); p != nil {
			m.dismiss(p.Content())
		}
	case "o":
		m.tapOverlay()
	case "k":
		m.toggleKeyboard()
	case "r":
		size := m.engine.Container().Size
		m.engine.TransitionToSize(graphics.Size{Width: size.Height, Height: size.Width}, presentation.ImmediateCoordinator{})
		m.status = "rotated"
	case "down":
		m.dragBy(dragStep)
	case "up":
		m.dragBy(-dragStep)
	case "enter", " ":
		m.release()
	}
	return nil
}

func (m *Model) present(kind string, style func(presentation.Content) presentation.Style) {
	m.next++
	label := fmt.Sprintf("%s %d", kind, m.next)
	c := content.NewText(label)
	m.labels[c] = label
	m.engine.SetItems(append(m.engine.Items(), presentation.NewItem(c, style(c))))
	m.status = "presented " + label
}

func (m *Model) dismiss(c presentation.Content) {
	m.engine.SetItems(presentation.Without(m.engine.Items(), c))
	m.status = "dismissed " + m.labels[c]
}

// top returns the topmost presentation that is still requested.
func (m *Model) top() *presentation.Presentation {
	items := m.engine.Items()
	if len(items) == 0 {
		return nil
	}
	p, _ := m.engine.PresentationFor(items[len(items)-1].Content)
	return p
}

func (m *Model) tapOverlay() {
	size := m.engine.Container().Size
	hit := m.engine.HitTest(graphics.Offset{X: size.Width / 2, Y: 1})
	switch hit.Kind {
	case presentation.HitOverlay:
		if m.engine.HandleOverlayTap(hit.ID) {
			m.status = "overlay tapped"
			return
		}
		m.status = "overlay tap ignored"
	case presentation.HitContent:
		m.status = "tapped content"
	default:
		m.status = "tap passed through"
	}
}

func (m *Model) toggleKeyboard() {
	size := m.engine.Container().Size
	frame, _ := m.keyboard.CurrentFrame()
	m.keyboard.Notify(keyboard.Change{
		Frame: keyboard.Frame{
			Rect:    graphics.RectFromLTWH(0, size.Height-keyboardHeight, size.Width, keyboardHeight),
			Visible: !frame.Visible,
		},
		Duration: keyboardDuration,
	})
	if frame.Visible {
		m.status = "keyboard hidden"
	} else {
		m.status = "keyboard shown"
	}
}

func (m *Model) dragBy(dy float64) {
	p := m.top()
	if p == nil {
		return
	}
	if m.drag == nil || m.drag.id != p.ID() {
		m.drag = &drag{id: p.ID()}
		m.engine.HandlePan(p, presentation.PanGesture{Phase: presentation.GestureBegan})
	}
	m.drag.translation += dy
	m.drag.direction = dy
	m.engine.HandlePan(p, presentation.PanGesture{
		Phase:       presentation.GestureChanged,
		Translation: graphics.Offset{Y: m.drag.translation},
	})
	m.status = fmt.Sprintf("dragging %s by %.0fpt", m.labels[p.Content()], m.drag.translation)
}

func (m *Model) release() {
	d := m.drag
	m.drag = nil
	if d == nil {
		return
	}
	p, ok := m.engine.Lookup(d.id)
	if !ok {
		return
	}
	velocity := float64(releaseSpeed)
	if d.direction < 0 {
		velocity = -velocity
	}
	m.engine.HandlePan(p, presentation.PanGesture{
		Phase:       presentation.GestureEnded,
		Translation: graphics.Offset{Y: d.translation},
		Velocity:    graphics.Offset{Y: velocity},
	})
	m.status = "released " + m.labels[p.Content()]
}

func (m *Model) label(c presentation.Content) string {
	return m.labels[c]
}

// View renders the title, the container and a status line.
func (m *Model) View() string {
	kb, _ := m.keyboard.CurrentFrame()
	screen := render.Screen(m.engine, kb.Rect, kb.Visible, m.cols, m.rows, m.label)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteByte('\n')
	b.WriteString(screen)
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d presented · %s", len(m.engine.Presentations()), m.status)))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("s sheet · t toast · d dismiss · o tap overlay · ↑/↓ drag · enter release · k keyboard · r rotate · q quit"))
	return b.String()
}

// Run starts an interactive program on the terminal.
func Run(opts Options) error {
	m := New(opts)
	defer m.Close()
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
