package circlemetrics

import (
	"fmt"
	"math"
	"sort"
	"testing"
)

// AssertionConfig contains thresholds for circle-metric properties.
type AssertionConfig struct {
	// Absolute tolerance for comparisons against decimal literals.
	// Identities computed in implementation order are checked with ==.
	Tolerance float64

	// Largest radius exercised by sweep-based assertions.
	MaxRadius float64
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Tolerance: 1e-9, // literal-vs-computed double rounding headroom
		MaxRadius: 1e6,
	}
}

// AssertNonNegativeArea verifies Area(r) ≥ 0 for every given radius.
//
// The squared term absorbs the sign of r, so this holds for negative
// radii too. NaN radii are skipped (NaN compares false with everything).
func AssertNonNegativeArea(t *testing.T, radii []float64, cfg AssertionConfig) {
	t.Helper()

	for _, r := range radii {
		if math.IsNaN(r) {
			continue
		}

		area := Area(r)
		if area < 0 {
			t.Errorf("Negative area: Area(%v) = %v\n"+
				"π·r² must be non-negative for real r.", r, area)
		}
	}

	t.Logf("✓ Non-negative area over %d radii", len(radii))
}

// AssertMonotonicArea verifies Area is non-decreasing in r for r ≥ 0.
//
// Mathematical property:
//
//	r1 ≤ r2 ⇒ Area(r1) ≤ Area(r2)  (for r1, r2 ≥ 0)
//
// IEEE-754 rounding is monotonic, so the property is exact, not
// approximate.
func AssertMonotonicArea(t *testing.T, radii []float64, cfg AssertionConfig) {
	t.Helper()

	sweep := nonNegativeSorted(radii, cfg.MaxRadius)
	if len(sweep) < 2 {
		t.Fatalf("Need at least 2 non-negative radii to check monotonicity, have %d", len(sweep))
	}

	var failures []string
	for i := 1; i < len(sweep); i++ {
		prev, curr := Area(sweep[i-1]), Area(sweep[i])
		if curr < prev {
			failures = append(failures, fmt.Sprintf(
				"  r=%v→%v: area %v → %v (decreased!)",
				sweep[i-1], sweep[i], prev, curr))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Area not monotonic:\n%s", failures)
	}

	t.Logf("✓ Monotonic area: non-decreasing over %d radii in [%v, %v]",
		len(sweep), sweep[0], sweep[len(sweep)-1])
}

// AssertLinearCircumference verifies the doubling law for every given radius.
//
// Mathematical property:
//
//	Circumference(2r) == 2·Circumference(r)
//
// Scaling by a power of two only shifts the exponent, so equality is
// exact in IEEE-754 (absent overflow), and the assertion uses ==.
func AssertLinearCircumference(t *testing.T, radii []float64, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for _, r := range radii {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}

		doubled := Circumference(2 * r)
		twice := 2 * Circumference(r)
		if math.IsInf(doubled, 0) || math.IsInf(twice, 0) {
			continue // overflowed the doubling, nothing to compare
		}

		if doubled != twice {
			failures = append(failures, fmt.Sprintf(
				"  r=%v: Circumference(2r)=%v, 2·Circumference(r)=%v",
				r, doubled, twice))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Circumference not linear under doubling:\n%s", failures)
	}

	t.Logf("✓ Linear circumference: exact doubling law over %d radii", len(radii))
}

// AssertZeroRadiusDegenerate verifies the degenerate circle collapses to zero.
//
//	Area(0) == 0 and Circumference(0) == 0
func AssertZeroRadiusDegenerate(t *testing.T) {
	t.Helper()

	c := New(0)

	if a := c.Area(); a != 0 {
		t.Errorf("Area(0) = %v, want exactly 0", a)
	}
	if p := c.Circumference(); p != 0 {
		t.Errorf("Circumference(0) = %v, want exactly 0", p)
	}

	t.Logf("✓ Degenerate circle: Area(0) == 0, Circumference(0) == 0")
}

// AssertCircleProperties runs all circle-metric assertions with default config.
func AssertCircleProperties(t *testing.T, radii []float64) {
	t.Helper()

	cfg := DefaultAssertionConfig()

	t.Run("NonNegativeArea", func(t *testing.T) {
		AssertNonNegativeArea(t, radii, cfg)
	})

	t.Run("MonotonicArea", func(t *testing.T) {
		AssertMonotonicArea(t, radii, cfg)
	})

	t.Run("LinearCircumference", func(t *testing.T) {
		AssertLinearCircumference(t, radii, cfg)
	})

	t.Run("ZeroRadiusDegenerate", func(t *testing.T) {
		AssertZeroRadiusDegenerate(t)
	})
}

// PrintMetrics outputs the computed metrics for each radius to the test log.
func PrintMetrics(t *testing.T, radii []float64) {
	t.Helper()

	t.Logf("\n=== Circle Metrics (π = %v) ===", Pi)
	t.Logf("  radius        area          circumference")
	t.Logf("  ------------  ------------  -------------")
	for _, r := range radii {
		c := New(r)
		t.Logf("  %-12g  %-12g  %-12g", r, c.Area(), c.Circumference())
	}
}

// nonNegativeSorted filters radii to [0, maxRadius] and returns them ascending.
func nonNegativeSorted(radii []float64, maxRadius float64) []float64 {
	sweep := make([]float64, 0, len(radii))
	for _, r := range radii {
		if math.IsNaN(r) || r < 0 || r > maxRadius {
			continue
		}
		sweep = append(sweep, r)
	}

	sort.Float64s(sweep)
	return sweep
}
