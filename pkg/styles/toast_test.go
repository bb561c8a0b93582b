package styles_test

import (
	"testing"
	"time"

	"github.com/go-drift/present/pkg/graphics"
	"github.com/go-drift/present/pkg/presentation"
	"github.com/go-drift/present/pkg/styles"
	presenttest "github.com/go-drift/present/pkg/testing"
)

func TestToastDisplayValues(t *testing.T) {
	toast := styles.NewToast()
	ctx := phoneContext()
	got := toast.DisplayValues(ctx).Frame
	if want := graphics.RectFromLTWH(16, 694, 368, 56); got != want {
		t.Errorf("frame = %v, want %v", got, want)
	}

	ctx.KeyboardFrame = graphics.RectFromLTWH(0, 500, 400, 300)
	ctx.KeyboardVisible = true
	if got := toast.DisplayValues(ctx).Frame; got.Bottom != 484 {
		t.Errorf("frame above keyboard = %v, want bottom 484", got)
	}
}

func TestToastBehavior(t *testing.T) {
	toast := styles.NewToast()
	ctx := phoneContext()
	if b := toast.Behavior(ctx); b.OverlayTap != presentation.OverlayTapPassThrough {
		t.Errorf("overlay tap = %v, want passThrough", b.OverlayTap)
	}
	if _, ok := toast.ReverseTransitionValues(ctx); ok {
		t.Error("toast has no reverse values")
	}
	if v := toast.EnterTransitionValues(ctx); v.Values.Alpha != 0 || v.Animation.Duration != 200*time.Millisecond {
		t.Errorf("enter = %+v", v)
	}
}

type kind int

const (
	modal kind = iota
	notice
)

type label struct{ name string }

func (*label) PreferredSize(graphics.Size) (graphics.Size, bool) { return graphics.Size{}, false }
func (*label) WillAppear()                                       {}
func (*label) DidAppear()                                        {}
func (*label) WillDisappear()                                    {}
func (*label) DidDisappear()                                     {}

func TestSheetAndToastTogether(t *testing.T) {
	h := presenttest.NewHarness(t)
	sheet, toast := &label{"sheet"}, &label{"toast"}
	items := []presentation.Item{
		presentation.WithInfo(presentation.NewItem(sheet, styles.NewSheet()), modal),
		presentation.WithInfo(presentation.NewItem(toast, styles.NewToast()), notice),
	}

	e := presentation.NewEngine()
	defer e.Close()
	e.SetContainer(presentation.Container{Size: graphics.Size{Width: 400, Height: 800}})
	e.SetContainerVisibility(presentation.Appeared)

	toasts := presentation.FilterItems(items, func(item presentation.Item) bool {
		k, _ := presentation.InfoOf[kind](item)
		return k == notice
	})
	e.SetItems(toasts)
	if err := h.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if hit := e.HitTest(graphics.Offset{X: 200, Y: 100}); hit.Kind != presentation.HitNone {
		t.Errorf("toast alone: HitTest = %+v, want none", hit)
	}

	e.SetItems(items)
	if err := h.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	p, _ := e.PresentationFor(sheet)
	if hit := e.HitTest(graphics.Offset{X: 200, Y: 100}); hit.Kind != presentation.HitOverlay || hit.ID != p.ID() {
		t.Errorf("with sheet: HitTest = %+v, want the sheet's overlay", hit)
	}
}
