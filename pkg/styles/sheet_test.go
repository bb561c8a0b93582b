package styles_test

import (
	"testing"
	"time"

	"github.com/go-drift/present/pkg/graphics"
	"github.com/go-drift/present/pkg/presentation"
	"github.com/go-drift/present/pkg/styles"
)

func phoneContext() presentation.Context {
	return presentation.Context{
		ContainerSize:  graphics.Size{Width: 400, Height: 800},
		SafeAreaInsets: graphics.EdgeInsets{Top: 44, Bottom: 34},
		Scale:          3,
	}
}

func TestSheetDisplayValues(t *testing.T) {
	s := styles.NewSheet()

	tests := []struct {
		name string
		ctx  func() presentation.Context
		want graphics.Rect
	}{
		{
			name: "default height",
			ctx:  phoneContext,
			want: graphics.RectFromLTWH(0, 400, 400, 400),
		},
		{
			name: "preferred size padded by bottom inset",
			ctx: func() presentation.Context {
				ctx := phoneContext()
				ctx.PreferredContentSize = graphics.Size{Width: 400, Height: 200}
				ctx.PreferredContentSizeKnown = true
				return ctx
			},
			want: graphics.RectFromLTWH(0, 566, 400, 234),
		},
		{
			name: "above keyboard",
			ctx: func() presentation.Context {
				ctx := phoneContext()
				ctx.PreferredContentSize = graphics.Size{Width: 400, Height: 200}
				ctx.PreferredContentSizeKnown = true
				ctx.KeyboardFrame = graphics.RectFromLTWH(0, 500, 400, 300)
				ctx.KeyboardVisible = true
				return ctx
			},
			want: graphics.RectFromLTWH(0, 300, 400, 200),
		},
		{
			name: "capped below top inset",
			ctx: func() presentation.Context {
				ctx := phoneContext()
				ctx.PreferredContentSize = graphics.Size{Width: 400, Height: 2000}
				ctx.PreferredContentSizeKnown = true
				return ctx
			},
			want: graphics.RectFromLTWH(0, 800-(800-44)*0.9, 400, (800-44)*0.9),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.DisplayValues(tt.ctx()).Frame
			if !got.ApproxEqual(tt.want) {
				t.Errorf("frame = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSheetHandleDecoration(t *testing.T) {
	s := styles.NewSheet()
	v := s.DisplayValues(phoneContext())
	if want := graphics.RectFromLTWH(184, 8, 32, 4); v.Decoration.Frame != want || v.Decoration.Alpha != 1 {
		t.Errorf("decoration = %+v, want frame %v", v.Decoration, want)
	}

	s.ShowHandle = false
	if v := s.DisplayValues(phoneContext()); v.Decoration != (presentation.Decoration{}) {
		t.Errorf("decoration = %+v, want none", v.Decoration)
	}
}

func TestSheetTransitions(t *testing.T) {
	s := styles.NewSheet()
	ctx := phoneContext()
	display := s.DisplayValues(ctx)

	enter := s.EnterTransitionValues(ctx)
	if enter.Values.Frame.Top != 800 || enter.Values.Frame.Height() != display.Frame.Height() {
		t.Errorf("enter frame = %v, want the display frame moved below the container", enter.Values.Frame)
	}
	if enter.Values.OverlayOpacity != 0 || enter.Animation.Spring == nil {
		t.Errorf("enter = %+v, want a clear overlay and a spring", enter)
	}

	exit := s.ExitTransitionValues(ctx)
	if exit.Values.Frame != enter.Values.Frame || exit.Animation.Duration != 250*time.Millisecond {
		t.Errorf("exit = %+v", exit)
	}

	s.Exit = presentation.Animation{Duration: time.Second}
	if got := s.ExitTransitionValues(ctx).Animation.Duration; got != time.Second {
		t.Errorf("custom exit duration = %v, want 1s", got)
	}
}

func TestSheetReverseStretchesUp(t *testing.T) {
	s := styles.NewSheet()
	ctx := phoneContext()
	display := s.DisplayValues(ctx)
	reverse, ok := s.ReverseTransitionValues(ctx)
	if !ok {
		t.Fatal("sheet has reverse values")
	}
	if reverse.Frame.Top != display.Frame.Top-24 || reverse.Frame.Bottom != display.Frame.Bottom {
		t.Errorf("reverse frame = %v, display = %v", reverse.Frame, display.Frame)
	}

	s.Stretch = 0
	if _, ok := s.ReverseTransitionValues(ctx); ok {
		t.Error("zero stretch has no reverse values")
	}
}

func TestSheetBehavior(t *testing.T) {
	s := styles.NewSheet()
	b := s.Behavior(phoneContext())
	if b.InteractiveDismiss != presentation.InteractiveDismissSwipeDown || b.OverlayTap != presentation.OverlayTapDismiss {
		t.Errorf("behavior = %+v", b)
	}
	if !b.AvoidsKeyboard || !b.UsesPreferredContentSize {
		t.Errorf("behavior = %+v, want keyboard avoidance and preferred size", b)
	}

	s.EnableDrag = false
	if b := s.Behavior(phoneContext()); b.InteractiveDismiss != presentation.InteractiveDismissDisabled {
		t.Error("drag disabled must disable interactive dismiss")
	}
}
