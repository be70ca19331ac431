// Package circlemetrics computes the area and circumference of a circle
// from its radius, using a fixed 4-decimal pi approximation.
//
// # Overview
//
// The package exposes a single immutable value type, Circle, with two
// derived scalar computations:
//
//	Area          = π·r²
//	Circumference = 2·π·r
//
// π is the package constant Pi = 3.1415, bound at construction. It is
// deliberately NOT math.Pi: every downstream expectation in this
// package's ecosystem is pinned to the 4-digit approximation
// (area(10) == 314.15, circumference(1) == 6.283).
//
// # Quick Start
//
//	c := circlemetrics.New(2.0)
//
//	fmt.Printf("r = %.1f\n", c.Radius())
//	fmt.Printf("area = %.4f\n", c.Area())                   // 12.566
//	fmt.Printf("circumference = %.4f\n", c.Circumference()) // 12.566
//
// One-shot package functions skip the value:
//
//	a := circlemetrics.Area(10)          // 314.15
//	p := circlemetrics.Circumference(10) // 62.83
//
// # Properties
//
// Both computations are pure reads of immutable state:
//
//   - Area(r) ≥ 0 for every real r (squared term)
//   - Area is monotonically non-decreasing in r for r ≥ 0
//   - Circumference is linear in r: Circumference(2r) == 2·Circumference(r),
//     exact in IEEE-754 (power-of-two scaling)
//   - Area(0) == 0 and Circumference(0) == 0
//
// No input is validated. Negative radii produce a negative circumference
// and a positive area; NaN and ±Inf propagate through the arithmetic.
//
// # Testing
//
// Use the exported assertions to validate the properties over a radius
// sweep:
//
//	func TestMyRadii(t *testing.T) {
//	    radii := []float64{0, 0.5, 1, 2, 10}
//
//	    circlemetrics.AssertCircleProperties(t, radii)
//	}
//
// # Concurrency
//
// Circle is a value with no post-construction mutation. Instances are
// safe for unsynchronized concurrent reads.
package circlemetrics
