package graphics

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("size = %v, want 30x40", r.Size())
	}
	if r.Origin() != (Offset{X: 10, Y: 20}) {
		t.Errorf("origin = %v, want (10, 20)", r.Origin())
	}
	if c := r.Center(); c != (Offset{X: 25, Y: 40}) {
		t.Errorf("center = %v, want (25, 40)", c)
	}
}

func TestRect_Contains(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10)
	tests := []struct {
		point Offset
		want  bool
	}{
		{Offset{X: 0, Y: 0}, true},
		{Offset{X: 9.9, Y: 9.9}, true},
		{Offset{X: 10, Y: 5}, false},
		{Offset{X: -1, Y: 5}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.point); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}

func TestRect_Intersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 100)
	b := RectFromLTWH(50, 60, 100, 100)
	got := a.Intersect(b)
	want := Rect{Left: 50, Top: 60, Right: 100, Bottom: 100}
	if got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
	if !a.Intersect(RectFromLTWH(200, 200, 10, 10)).IsEmpty() {
		t.Error("disjoint rects should intersect to empty")
	}
}

func TestEdgeInsets_Inset(t *testing.T) {
	insets := EdgeInsets{Top: 44, Bottom: 34}
	got := insets.Inset(RectFromLTWH(0, 0, 390, 844))
	if got.Top != 44 || got.Bottom != 810 || got.Width() != 390 {
		t.Errorf("Inset = %v", got)
	}
}

func TestRect_ApproxEqual(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	if !a.ApproxEqual(a.Translate(0.00001, 0)) {
		t.Error("expected tiny translation to compare equal")
	}
	if a.ApproxEqual(a.Translate(1, 0)) {
		t.Error("expected translated rect to differ")
	}
}
