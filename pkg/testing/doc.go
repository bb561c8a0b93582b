// Package testing provides deterministic timing for presentation tests.
//
// A [Harness] installs a [FakeClock] as the animation clock and steps the
// animation tickers explicitly, so animator completions fire exactly when a
// test pumps past them:
//
//	h := presenttest.NewHarness(t)
//	engine.SetItems(items)
//	h.Pump(100 * time.Millisecond)
//	if err := h.PumpAndSettle(time.Second); err != nil {
//	    t.Fatal(err)
//	}
//
// The package name collides with the standard library, so tests import it
// under an alias:
//
//	import presenttest "github.com/go-drift/present/pkg/testing"
package testing
