package animation

import (
	"math"
	"time"
)

// SpringDescription describes a damped spring by its damping ratio and
// response (the period of the undamped oscillation).
type SpringDescription struct {
	// DampingRatio is 1 for a critically damped spring and below 1 for a
	// bouncy one. Values above 1 are treated as 1.
	DampingRatio float64
	// Response is the undamped period. Smaller is stiffer.
	Response time.Duration
}

// IOSSpring approximates the system's default non-bouncy spring.
func IOSSpring() SpringDescription {
	return SpringDescription{DampingRatio: 1, Response: 400 * time.Millisecond}
}

// InteractiveSpring is the stiff spring used while a gesture is tracking
// and when a released gesture settles.
func InteractiveSpring() SpringDescription {
	return SpringDescription{DampingRatio: 0.86, Response: 250 * time.Millisecond}
}

// BouncySpring is an underdamped spring with a visible overshoot.
func BouncySpring() SpringDescription {
	return SpringDescription{DampingRatio: 0.6, Response: 500 * time.Millisecond}
}

const (
	minSettlingDuration = 50 * time.Millisecond
	maxSettlingDuration = 3 * time.Second
)

func (s SpringDescription) normalized() (zeta, omega float64) {
	zeta = s.DampingRatio
	if zeta <= 0 {
		zeta = 1
	}
	if zeta > 1 {
		zeta = 1
	}
	response := s.Response
	if response <= 0 {
		response = IOSSpring().Response
	}
	omega = 2 * math.Pi / response.Seconds()
	return zeta, omega
}

// SettlingDuration returns how long the spring takes to come within 0.1% of
// its target when starting with the given relative velocity (target
// distances per second).
func (s SpringDescription) SettlingDuration(initialVelocity float64) time.Duration {
	zeta, omega := s.normalized()
	amplitude := 1 + math.Abs(initialVelocity)/omega
	seconds := math.Log(1000*amplitude) / (zeta * omega)
	if zeta >= 1 {
		// The (1 + ωt) factor of critical damping decays more slowly than
		// the bare envelope.
		seconds *= 1.5
	}
	d := time.Duration(seconds * float64(time.Second))
	if d < minSettlingDuration {
		return minSettlingDuration
	}
	if d > maxSettlingDuration {
		return maxSettlingDuration
	}
	return d
}

// Curve returns a curve over normalized time that follows the spring from 0
// to 1 starting with initialVelocity, together with the duration the curve
// spans. initialVelocity is relative: a value of 2 means the animated value
// is moving two full distances per second at t = 0.
func (s SpringDescription) Curve(initialVelocity float64) (Curve, time.Duration) {
	zeta, omega := s.normalized()
	duration := s.SettlingDuration(initialVelocity)
	total := duration.Seconds()
	// Displacement from the target starts at -1.
	x0 := -1.0
	v0 := initialVelocity

	if zeta >= 1 {
		return func(t float64) float64 {
			if t >= 1 {
				return 1
			}
			if t <= 0 {
				return 0
			}
			tau := t * total
			x := (x0 + (v0+omega*x0)*tau) * math.Exp(-omega*tau)
			return 1 + x
		}, duration
	}

	omegaD := omega * math.Sqrt(1-zeta*zeta)
	return func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		if t <= 0 {
			return 0
		}
		tau := t * total
		envelope := math.Exp(-zeta * omega * tau)
		x := envelope * (x0*math.Cos(omegaD*tau) + ((v0+zeta*omega*x0)/omegaD)*math.Sin(omegaD*tau))
		return 1 + x
	}, duration
}
