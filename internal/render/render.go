// Package render draws presentation frames and transition traces for the
// terminal.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/present/internal/scenario"
	"github.com/go-drift/present/pkg/graphics"
	"github.com/go-drift/present/pkg/presentation"
)

// Colors
var (
	Primary = lipgloss.Color("212")
	Accent  = lipgloss.Color("45")
	Warning = lipgloss.Color("214")
	Muted   = lipgloss.Color("241")
	Border  = lipgloss.Color("240")
)

// Cell styles
var (
	backgroundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))
	overlayStyle    = lipgloss.NewStyle().Foreground(Muted)
	surfaceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	fadedStyle      = lipgloss.NewStyle().Foreground(Muted)
	handleStyle     = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	keyboardStyle   = lipgloss.NewStyle().Foreground(Accent)
)

// Trace styles
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	TimeStyle   = lipgloss.NewStyle().Foreground(Muted)
	LabelStyle  = lipgloss.NewStyle().Foreground(Primary).Bold(true)
)

type cellKind uint8

const (
	cellBackground cellKind = iota
	cellOverlay
	cellSurface
	cellFaded
	cellHandle
	cellKeyboard
)

func (k cellKind) style() lipgloss.Style {
	switch k {
	case cellOverlay:
		return overlayStyle
	case cellSurface:
		return surfaceStyle
	case cellFaded:
		return fadedStyle
	case cellHandle:
		return handleStyle
	case cellKeyboard:
		return keyboardStyle
	default:
		return backgroundStyle
	}
}

type cell struct {
	r    rune
	kind cellKind
}

// Canvas is a grid of terminal cells mapped onto a container in points.
type Canvas struct {
	cols, rows int
	sx, sy     float64
	cells      [][]cell
}

// NewCanvas returns a cols x rows canvas covering a container of size.
func NewCanvas(size graphics.Size, cols, rows int) *Canvas {
	cols, rows = max(cols, 1), max(rows, 1)
	c := &Canvas{cols: cols, rows: rows, cells: make([][]cell, rows)}
	if size.Width > 0 {
		c.sx = float64(cols) / size.Width
	}
	if size.Height > 0 {
		c.sy = float64(rows) / size.Height
	}
	for y := range c.cells {
		c.cells[y] = make([]cell, cols)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: '·', kind: cellBackground}
		}
	}
	return c
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }

// bounds converts r to a clipped cell range. ok is false when nothing of r
// lands on the canvas.
func (c *Canvas) bounds(r graphics.Rect) (x0, y0, x1, y1 int, ok bool) {
	x0 = clampInt(int(math.Floor(r.Left*c.sx)), 0, c.cols)
	x1 = clampInt(int(math.Ceil(r.Right*c.sx)), 0, c.cols)
	y0 = clampInt(int(math.Floor(r.Top*c.sy)), 0, c.rows)
	y1 = clampInt(int(math.Ceil(r.Bottom*c.sy)), 0, c.rows)
	return x0, y0, x1, y1, x1 > x0 && y1 > y0
}

func (c *Canvas) fill(r graphics.Rect, ch rune, kind cellKind) {
	x0, y0, x1, y1, ok := c.bounds(r)
	if !ok {
		return
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.cells[y][x] = cell{r: ch, kind: kind}
		}
	}
}

// Overlay dims the whole canvas.
func (c *Canvas) Overlay(opacity float64) {
	if opacity <= 0 {
		return
	}
	ch := '░'
	if opacity >= 0.5 {
		ch = '▒'
	}
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ch, kind: cellOverlay}
		}
	}
}

// Keyboard draws the keyboard frame.
func (c *Canvas) Keyboard(frame graphics.Rect) {
	c.fill(frame, '▓', cellKeyboard)
	x0, y0, x1, _, ok := c.bounds(frame)
	if ok {
		c.text(x0, x1, y0, "keyboard", cellKeyboard)
	}
}

// Surface draws a bordered box at frame with label centered on its first
// inner row. Surfaces with alpha below one half are drawn faded.
func (c *Canvas) Surface(frame graphics.Rect, alpha float64, label string) {
	if alpha <= 0 {
		return
	}
	kind := cellSurface
	if alpha < 0.5 {
		kind = cellFaded
	}
	x0, y0, x1, y1, ok := c.bounds(frame)
	if !ok {
		return
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			ch := ' '
			switch {
			case y == y0 && x == x0:
				ch = '╭'
			case y == y0 && x == x1-1:
				ch = '╮'
			case y == y1-1 && x == x0:
				ch = '╰'
			case y == y1-1 && x == x1-1:
				ch = '╯'
			case y == y0 || y == y1-1:
				ch = '─'
			case x == x0 || x == x1-1:
				ch = '│'
			}
			c.cells[y][x] = cell{r: ch, kind: kind}
		}
	}
	row := y0 + 1
	if row >= y1-1 {
		row = y0
	}
	c.text(x0+1, x1-1, row, label, kind)
}

// Handle draws a decoration at frame, which is relative to parent.
func (c *Canvas) Handle(parent, frame graphics.Rect) {
	abs := frame.Translate(parent.Left, parent.Top)
	x0, y0, x1, _, ok := c.bounds(abs)
	if !ok {
		return
	}
	for x := x0; x < x1; x++ {
		c.cells[y0][x] = cell{r: '━', kind: cellHandle}
	}
}

func (c *Canvas) text(x0, x1, y int, s string, kind cellKind) {
	if y < 0 || y >= c.rows {
		return
	}
	runes := []rune(s)
	width := x1 - x0
	if width <= 0 {
		return
	}
	if len(runes) > width {
		runes = runes[:width]
	}
	start := x0 + (width-len(runes))/2
	for i, r := range runes {
		c.cells[y][start+i] = cell{r: r, kind: kind}
	}
}

// String renders the canvas, styling runs of cells of the same kind.
func (c *Canvas) String() string {
	lines := make([]string, c.rows)
	for y, row := range c.cells {
		var b strings.Builder
		var run []rune
		kind := row[0].kind
		flush := func() {
			if len(run) > 0 {
				b.WriteString(kind.style().Render(string(run)))
				run = run[:0]
			}
		}
		for _, cl := range row {
			if cl.kind != kind {
				flush()
				kind = cl.kind
			}
			run = append(run, cl.r)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Screen draws every presentation of e bottom to top, with the keyboard
// frame on top when visible. label names each presentation's content.
func Screen(e *presentation.Engine, keyboard graphics.Rect, keyboardVisible bool, cols, rows int, label func(presentation.Content) string) string {
	c := NewCanvas(e.Container().Size, cols, rows)
	for _, p := range e.Presentations() {
		v := p.Values()
		c.Overlay(v.OverlayOpacity)
		name := label(p.Content())
		c.Surface(v.Frame, v.Alpha, fmt.Sprintf("%s %s", name, p.State().Kind()))
		if v.Decoration.Alpha > 0 {
			c.Handle(v.Frame, v.Decoration.Frame)
		}
	}
	if keyboardVisible {
		c.Keyboard(keyboard)
	}
	return c.String()
}

// StateStyle colors a transition state by how settled it is.
func StateStyle(kind presentation.StateKind) lipgloss.Style {
	switch kind {
	case presentation.StatePresented:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	case presentation.StateInteractiveDismiss, presentation.StateInteractiveInverse:
		return lipgloss.NewStyle().Foreground(Warning)
	case presentation.StateEntering, presentation.StateExiting,
		presentation.StateAdaptingToKeyboard, presentation.StateTransitioningSize:
		return lipgloss.NewStyle().Foreground(Accent)
	default:
		return lipgloss.NewStyle().Foreground(Muted)
	}
}

// Trace renders recorded transitions as an aligned table.
func Trace(rows []scenario.Record) string {
	labelWidth := len("presentation")
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}
	stateWidth := len("adaptingToKeyboard")
	col := func(w int) lipgloss.Style { return lipgloss.NewStyle().Width(w).MarginRight(2) }

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		col(8).Inherit(HeaderStyle).Render("time"),
		col(labelWidth).Inherit(HeaderStyle).Render("presentation"),
		col(stateWidth).Inherit(HeaderStyle).Render("from"),
		col(stateWidth).Inherit(HeaderStyle).Render("to"),
		HeaderStyle.Render("frame"),
	))
	for _, r := range rows {
		b.WriteByte('\n')
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			col(8).Inherit(TimeStyle).Render(r.At.String()),
			col(labelWidth).Inherit(LabelStyle).Render(r.Label),
			col(stateWidth).Inherit(StateStyle(r.From)).Render(r.From.String()),
			col(stateWidth).Inherit(StateStyle(r.To)).Render(r.To.String()),
			r.Frame.String(),
		))
	}
	return b.String()
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
