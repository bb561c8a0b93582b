package dynamics

import (
	"math"
	"testing"

	"github.com/go-drift/present/pkg/errors"
	"github.com/go-drift/present/pkg/graphics"
)

func TestProjectedDistance(t *testing.T) {
	tests := []struct {
		velocity, rate, want float64
	}{
		{500, 0.5, 0.5},
		{1000, 0.5, 1},
		{0, DecelerationRateNormal, 0},
		{-500, 0.5, -0.5},
		{2000, DecelerationRateNormal, 2000 / (1000/DecelerationRateNormal - 1000)},
	}
	for _, tt := range tests {
		got := ProjectedDistance(tt.velocity, tt.rate)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ProjectedDistance(%v, %v) = %v, want %v", tt.velocity, tt.rate, got, tt.want)
		}
	}
}

func TestProjectedDistanceMatchesFormula(t *testing.T) {
	for _, rate := range []float64{0.01, 0.25, 0.5, 0.9, DecelerationRateFast, DecelerationRateNormal} {
		for _, v := range []float64{-3000, -1, 0, 1, 250, 4000} {
			want := v / ((1000 / rate) - 1000)
			if got := ProjectedDistance(v, rate); got != want {
				t.Errorf("ProjectedDistance(%v, %v) = %v, want %v", v, rate, got, want)
			}
		}
	}
}

func TestProjectedDistanceRejectsBadRate(t *testing.T) {
	old := errors.SetHandler(quietHandler{})
	defer errors.SetHandler(old)

	for _, rate := range []float64{0, 1, -0.5, 1.5, math.NaN()} {
		func() {
			defer func() {
				if _, ok := recover().(*errors.InvariantError); !ok {
					t.Errorf("rate %v: expected invariant panic", rate)
				}
			}()
			ProjectedDistance(100, rate)
		}()
	}
}

func TestProjectedFrame(t *testing.T) {
	from := graphics.RectFromLTWH(0, 100, 300, 200)
	got := ProjectedFrame(from, graphics.Offset{X: 0, Y: 500}, 0.5)
	want := graphics.RectFromLTWH(0, 100.5, 300, 200)
	if !got.ApproxEqual(want) {
		t.Errorf("ProjectedFrame = %v, want %v", got, want)
	}
}

type quietHandler struct{}

func (quietHandler) HandleError(*errors.PresentError)       {}
func (quietHandler) HandlePanic(*errors.PanicError)         {}
func (quietHandler) HandleInvariant(*errors.InvariantError) {}
