package presentation

import "github.com/go-drift/present/pkg/animation"

// Tuning holds the constants of the interactive model. Zero fields take
// their default.
type Tuning struct {
	// DecelerationRate is used to project where a released drag would come
	// to rest.
	DecelerationRate float64
	// DismissThreshold is the fraction of the dismiss distance the
	// projected frame must reach for a release to commit.
	DismissThreshold float64
	// InverseResistance multiplies the reverse distance a drag must cover
	// before the rubber band is fully stretched.
	InverseResistance float64
	// ScrollTopTolerance is how far from its top edge, in points, a scroll
	// view may be and still count as at the top.
	ScrollTopTolerance float64
	// MaxPreheatPasses bounds the layout passes spent measuring the
	// content's preferred size before entering.
	MaxPreheatPasses int
	// DismissSpring drives exits committed by a gesture.
	DismissSpring animation.SpringDescription
	// SettleSpring drives released gestures back to rest.
	SettleSpring animation.SpringDescription
}

// DefaultTuning returns the default interactive model.
func DefaultTuning() Tuning {
	return Tuning{
		DecelerationRate:   0.998,
		DismissThreshold:   1,
		InverseResistance:  3,
		ScrollTopTolerance: 1,
		MaxPreheatPasses:   2,
		DismissSpring:      animation.InteractiveSpring(),
		SettleSpring:       animation.InteractiveSpring(),
	}
}

// Normalized returns t with every zero field replaced by its default.
func (t Tuning) Normalized() Tuning {
	d := DefaultTuning()
	if t.DecelerationRate <= 0 {
		t.DecelerationRate = d.DecelerationRate
	}
	if t.DismissThreshold <= 0 {
		t.DismissThreshold = d.DismissThreshold
	}
	if t.InverseResistance <= 0 {
		t.InverseResistance = d.InverseResistance
	}
	if t.ScrollTopTolerance <= 0 {
		t.ScrollTopTolerance = d.ScrollTopTolerance
	}
	if t.MaxPreheatPasses <= 0 {
		t.MaxPreheatPasses = d.MaxPreheatPasses
	}
	if t.DismissSpring.Response <= 0 {
		t.DismissSpring = d.DismissSpring
	}
	if t.SettleSpring.Response <= 0 {
		t.SettleSpring = d.SettleSpring
	}
	return t
}
