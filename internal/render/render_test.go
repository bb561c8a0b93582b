package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/present/internal/scenario"
	"github.com/go-drift/present/pkg/graphics"
	"github.com/go-drift/present/pkg/presentation"
)

var phone = graphics.Size{Width: 400, Height: 800}

func TestCanvasDimensions(t *testing.T) {
	c := NewCanvas(phone, 40, 20)
	out := c.String()
	if got := lipgloss.Height(out); got != 20 {
		t.Errorf("height = %d, want 20", got)
	}
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d width = %d, want 40", i, w)
		}
	}
}

func TestCanvasSurface(t *testing.T) {
	c := NewCanvas(phone, 40, 20)
	c.Surface(graphics.RectFromLTWH(0, 600, 400, 200), 1, "sheet")
	lines := strings.Split(c.String(), "\n")

	if !strings.HasPrefix(lines[15], "╭") || !strings.HasSuffix(lines[15], "╮") {
		t.Errorf("top border row = %q", lines[15])
	}
	if !strings.Contains(lines[16], "sheet") {
		t.Errorf("label row = %q", lines[16])
	}
	if !strings.HasPrefix(lines[19], "╰") {
		t.Errorf("bottom border row = %q", lines[19])
	}
	if strings.ContainsAny(lines[14], "╭│") {
		t.Errorf("row above the surface was drawn on: %q", lines[14])
	}
}

func TestCanvasClipsOffscreen(t *testing.T) {
	c := NewCanvas(phone, 40, 20)
	c.Surface(graphics.RectFromLTWH(0, 800, 400, 200), 1, "gone")
	if strings.Contains(c.String(), "gone") {
		t.Error("surface below the container must not be drawn")
	}
}

func TestCanvasTransparentSurfaceSkipped(t *testing.T) {
	c := NewCanvas(phone, 40, 20)
	c.Surface(graphics.RectFromLTWH(0, 0, 400, 800), 0, "hidden")
	if strings.Contains(c.String(), "hidden") {
		t.Error("zero alpha surface must not be drawn")
	}
}

func TestCanvasOverlayAndKeyboard(t *testing.T) {
	c := NewCanvas(phone, 40, 20)
	c.Overlay(0.4)
	c.Keyboard(graphics.RectFromLTWH(0, 600, 400, 200))
	lines := strings.Split(c.String(), "\n")
	if !strings.Contains(lines[0], "░") {
		t.Errorf("light overlay row = %q", lines[0])
	}
	if !strings.Contains(lines[15], "keyboard") || !strings.Contains(lines[19], "▓") {
		t.Errorf("keyboard rows = %q / %q", lines[15], lines[19])
	}
}

func TestCanvasHandleIsRelativeToParent(t *testing.T) {
	c := NewCanvas(phone, 40, 20)
	parent := graphics.RectFromLTWH(0, 400, 400, 400)
	c.Surface(parent, 1, "")
	c.Handle(parent, graphics.RectFromLTWH(180, 8, 40, 4))
	lines := strings.Split(c.String(), "\n")
	if !strings.Contains(lines[10], "━━━━") {
		t.Errorf("handle row = %q", lines[10])
	}
}

func TestTrace(t *testing.T) {
	out := Trace([]scenario.Record{{
		At:    48 * time.Millisecond,
		Label: "sheet",
		From:  presentation.StatePending,
		To:    presentation.StateEntering,
		Frame: graphics.RectFromLTWH(0, 800, 400, 45),
	}})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want header and one row", len(lines))
	}
	for _, want := range []string{"48ms", "sheet", "pending", "entering"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("row %q missing %q", lines[1], want)
		}
	}
	if strings.Index(lines[0], "to") <= strings.Index(lines[0], "from") {
		t.Errorf("header out of order: %q", lines[0])
	}
}
