package scenario

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-drift/present/pkg/styles"
)

// Scenario is a named script.
type Scenario struct {
	Name        string
	Description string
	Run         func(r *Runner) error
}

var scenarios = map[string]Scenario{
	"roundtrip": {
		Name:        "roundtrip",
		Description: "present a sheet, let it settle, then dismiss it",
		Run: func(r *Runner) error {
			r.Present("sheet", r.Sheet("sheet"))
			if err := r.Settle(); err != nil {
				return err
			}
			r.Dismiss("sheet")
			return r.Settle()
		},
	},
	"swap": {
		Name:        "swap",
		Description: "replace one sheet with another in a single update",
		Run: func(r *Runner) error {
			r.Present("first", r.Sheet("first"))
			if err := r.Settle(); err != nil {
				return err
			}
			r.Dismiss("first")
			r.Present("second", r.Sheet("second"))
			return r.Settle()
		},
	},
	"gesture-cancel": {
		Name:        "gesture-cancel",
		Description: "drag a sheet down a little and release it upwards",
		Run: func(r *Runner) error {
			r.Present("sheet", r.Sheet("sheet"))
			if err := r.Settle(); err != nil {
				return err
			}
			if err := r.Drag("sheet", []float64{20, 60, 120}, -400); err != nil {
				return err
			}
			return r.Settle()
		},
	},
	"gesture-commit": {
		Name:        "gesture-commit",
		Description: "fling a sheet down past the dismiss threshold",
		Run: func(r *Runner) error {
			r.Present("sheet", r.Sheet("sheet"))
			if err := r.Settle(); err != nil {
				return err
			}
			if err := r.Drag("sheet", []float64{40, 120, 200}, 2000); err != nil {
				return err
			}
			return r.Settle()
		},
	},
	"keyboard": {
		Name:        "keyboard",
		Description: "raise and lower the keyboard under a presented sheet and toast",
		Run: func(r *Runner) error {
			r.Present("sheet", r.Sheet("sheet"))
			r.Present("toast", styles.NewToast())
			if err := r.Settle(); err != nil {
				return err
			}
			r.ShowKeyboard(300, 250*time.Millisecond)
			if err := r.Settle(); err != nil {
				return err
			}
			r.HideKeyboard(250 * time.Millisecond)
			return r.Settle()
		},
	},
	"rotate": {
		Name:        "rotate",
		Description: "rotate the container while a sheet is entering",
		Run: func(r *Runner) error {
			r.Present("sheet", r.Sheet("sheet"))
			r.Pump(100 * time.Millisecond)
			r.Rotate()
			return r.Settle()
		},
	},
}

// Names returns the scenario names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the scenario called name.
func Lookup(name string) (Scenario, error) {
	s, ok := scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario %q", name)
	}
	return s, nil
}
