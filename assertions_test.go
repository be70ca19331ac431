package circlemetrics

import (
	"math"
	"testing"
)

func TestAssertCircleProperties_StandardSweep(t *testing.T) {
	radii := []float64{0, 0.001, 0.5, 1, 2, 3.1415, 10, 100, 1e4}

	AssertCircleProperties(t, radii)
	PrintMetrics(t, radii)
}

// TestAssertCircleProperties_HostileInputs feeds the sweep the inputs
// the core accepts without validation. The assertions must hold (or
// skip) rather than false-positive on them.
func TestAssertCircleProperties_HostileInputs(t *testing.T) {
	radii := []float64{-5, -0.5, 0, 0.5, 5, math.NaN()}
	cfg := DefaultAssertionConfig()

	AssertNonNegativeArea(t, radii, cfg)
	AssertLinearCircumference(t, radii, cfg)
}

func TestAssertMonotonicArea_UnsortedInput(t *testing.T) {
	// The helper sorts internally; caller order must not matter.
	radii := []float64{10, 0, 3, 1, 7}

	AssertMonotonicArea(t, radii, DefaultAssertionConfig())
}

func TestAssertLinearCircumference_LargeRadii(t *testing.T) {
	// Doubling law stays exact right up to the overflow guard.
	radii := []float64{1e100, 1e150, math.MaxFloat64 / 8}

	AssertLinearCircumference(t, radii, DefaultAssertionConfig())
}

func TestDefaultAssertionConfig(t *testing.T) {
	cfg := DefaultAssertionConfig()

	if cfg.Tolerance <= 0 {
		t.Errorf("Tolerance = %v, want > 0", cfg.Tolerance)
	}
	if cfg.MaxRadius <= 0 {
		t.Errorf("MaxRadius = %v, want > 0", cfg.MaxRadius)
	}
}
