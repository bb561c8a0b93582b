// Package content provides simple presentable content.
package content

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/present/pkg/graphics"
	"github.com/go-drift/present/pkg/presentation"
)

// TextLine is a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout is the result of wrapping text to a width.
type TextLayout struct {
	Lines      []TextLine
	LineHeight float64
	Size       graphics.Size
}

// Text is presentable content showing a block of text. It measures itself
// with a font face and wraps on word boundaries.
//
// Text is not safe for concurrent use.
type Text struct {
	// Padding surrounds the text inside the presentation.
	Padding graphics.EdgeInsets
	// OnLifecycle, if set, is called with every lifecycle callback.
	OnLifecycle func(presentation.LifecycleEvent)

	text      string
	face      font.Face
	phase     presentation.Visibility
	listeners map[int]func()
	nextID    int
}

// NewText returns text content measured with the 7x13 basic font.
func NewText(text string) *Text {
	return NewTextWithFace(text, basicfont.Face7x13)
}

// NewTextWithFace returns text content measured with face.
func NewTextWithFace(text string, face font.Face) *Text {
	return &Text{
		Padding:   graphics.EdgeInsets{Top: 16, Bottom: 16, Left: 16, Right: 16},
		text:      text,
		face:      face,
		listeners: make(map[int]func()),
	}
}

// Text returns the current text.
func (t *Text) Text() string {
	return t.text
}

// SetText replaces the text and tells listeners that the preferred size
// may have changed.
func (t *Text) SetText(text string) {
	if text == t.text {
		return
	}
	t.text = text
	for _, fn := range t.listeners {
		fn()
	}
}

// Phase returns the phase the content was last told it is in.
func (t *Text) Phase() presentation.Visibility {
	return t.phase
}

// Layout wraps the text to maxWidth. A maxWidth of zero or less disables
// wrapping.
func (t *Text) Layout(maxWidth float64) TextLayout {
	metrics := t.face.Metrics()
	layout := TextLayout{LineHeight: toFloat(metrics.Height)}
	for _, paragraph := range strings.Split(t.text, "\n") {
		layout.Lines = append(layout.Lines, t.wrap(paragraph, maxWidth)...)
	}
	for _, line := range layout.Lines {
		if line.Width > layout.Size.Width {
			layout.Size.Width = line.Width
		}
	}
	layout.Size.Height = layout.LineHeight * float64(len(layout.Lines))
	return layout
}

func (t *Text) wrap(paragraph string, maxWidth float64) []TextLine {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []TextLine{{}}
	}
	var lines []TextLine
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if maxWidth > 0 && t.measure(candidate) > maxWidth {
			lines = append(lines, TextLine{Text: current, Width: t.measure(current)})
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, TextLine{Text: current, Width: t.measure(current)})
}

func (t *Text) measure(s string) float64 {
	return toFloat(font.MeasureString(t.face, s))
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// PreferredSize fills the fitting width and is as tall as the wrapped text
// plus padding. Empty text has no preference.
func (t *Text) PreferredSize(fitting graphics.Size) (graphics.Size, bool) {
	if t.text == "" {
		return graphics.Size{}, false
	}
	inner := fitting.Width - t.Padding.Left - t.Padding.Right
	layout := t.Layout(inner)
	return graphics.Size{
		Width:  fitting.Width,
		Height: layout.Size.Height + t.Padding.Top + t.Padding.Bottom,
	}, true
}

// AddPreferredSizeListener registers fn to run whenever the text changes.
func (t *Text) AddPreferredSizeListener(fn func()) func() {
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	return func() { delete(t.listeners, id) }
}

func (t *Text) WillAppear()    { t.lifecycle(presentation.WillAppear, presentation.Appearing) }
func (t *Text) DidAppear()     { t.lifecycle(presentation.DidAppear, presentation.Appeared) }
func (t *Text) WillDisappear() { t.lifecycle(presentation.WillDisappear, presentation.Disappearing) }
func (t *Text) DidDisappear()  { t.lifecycle(presentation.DidDisappear, presentation.Disappeared) }

func (t *Text) lifecycle(e presentation.LifecycleEvent, phase presentation.Visibility) {
	t.phase = phase
	if t.OnLifecycle != nil {
		t.OnLifecycle(e)
	}
}

var (
	_ presentation.Content               = (*Text)(nil)
	_ presentation.PreferredSizeNotifier = (*Text)(nil)
)
