package dynamics_test

import (
	"fmt"

	"github.com/go-drift/present/pkg/dynamics"
	"github.com/go-drift/present/pkg/graphics"
)

func ExampleProjectedDistance() {
	// A 1000pt/s release at the normal rate travels another 499 points.
	fmt.Printf("%.1f\n", dynamics.ProjectedDistance(1000, dynamics.DecelerationRateNormal))
	fmt.Printf("%.1f\n", dynamics.ProjectedDistance(1000, dynamics.DecelerationRateFast))

	// Output:
	// 499.0
	// 99.0
}

func ExampleProjectedFrame() {
	frame := graphics.RectFromLTWH(0, 500, 400, 300)
	fmt.Println(dynamics.ProjectedFrame(frame, graphics.Offset{Y: 1000}, dynamics.DecelerationRateNormal))

	// Output:
	// Rect(0.0, 999.0, 400.0 x 300.0)
}
