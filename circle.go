package circlemetrics

// Pi is the fixed approximation used for every circle computation
// in this package.
//
// NOTE: Precision deliberately limited to 4 decimal places.
// This is NOT math.Pi. Downstream fixtures assert against exact
// 4-digit expectations (area(10) == 314.15, circumference(1) == 6.283),
// so upgrading this literal to full precision is a breaking change.
// Value truncated from 3.14159265358979323846 (theoretical).
const Pi = 3.1415

// Circle is an immutable circle description: a radius and the pi
// approximation bound at construction time.
//
// Instances are plain values. No method mutates the receiver, so a
// Circle may be read concurrently without synchronization.
//
// Example:
//
//	c := circlemetrics.New(2.0)
//
//	fmt.Printf("area: %.4f\n", c.Area())                   // 12.566
//	fmt.Printf("circumference: %.4f\n", c.Circumference()) // 12.566
type Circle struct {
	radius float64
	pi     float64
}

// New creates a Circle with the given radius.
//
// The radius is stored as-is: negative, zero, and non-finite values are
// accepted and flow through IEEE-754 arithmetic in the derived
// computations (a NaN radius yields NaN metrics, a negative radius
// yields a negative circumference and a positive area).
func New(radius float64) Circle {
	return Circle{
		radius: radius,
		pi:     Pi,
	}
}

// Radius returns the radius supplied at construction.
func (c Circle) Radius() float64 {
	return c.radius
}

// PiConstant returns the pi approximation bound at construction.
// Always equal to Pi for circles created with New.
func (c Circle) PiConstant() float64 {
	return c.pi
}

// Area returns pi·r².
//
// Mathematical property:
//
//	Area ≥ 0 for every real radius (the squared term absorbs the sign)
//	Area is monotonically non-decreasing in r for r ≥ 0
func (c Circle) Area() float64 {
	return c.pi * c.radius * c.radius
}

// Circumference returns 2·pi·r.
//
// Mathematical property:
//
//	Circumference is linear in r: doubling the radius exactly doubles
//	the circumference (scaling by a power of two is exact in IEEE-754)
func (c Circle) Circumference() float64 {
	return 2 * c.pi * c.radius
}

// Scale returns a new Circle with radius k·r. The receiver is unchanged.
//
// This is the similarity transform of the plane restricted to circles:
//
//	Scale(k).Circumference() == k · Circumference()  (for exact k·r)
//	Scale(k).Area()          == k² · Area()
func (c Circle) Scale(k float64) Circle {
	return Circle{
		radius: k * c.radius,
		pi:     c.pi,
	}
}

// Area is the one-shot form of New(radius).Area().
func Area(radius float64) float64 {
	return New(radius).Area()
}

// Circumference is the one-shot form of New(radius).Circumference().
func Circumference(radius float64) float64 {
	return New(radius).Circumference()
}
