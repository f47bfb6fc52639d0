package geom

import "math"

// Point is a 2D/3D position in micrometres. Width overrides the governing
// PathConfig's extrusion width for just the segment ending at this point; 0
// means "no override" (travel-style, or "use the config's width").
type Point struct {
	X, Y, Z int64
	Width   int64
}

// Pt builds a Point with Z and Width left at zero.
func Pt(x, y int64) Point {
	return Point{X: x, Y: y}
}

// EqualXY reports whether two points share the same X and Y, ignoring Z and
// Width. Travel folding and perimeter-closure checks compare positions this
// way: a layer's Z is constant while a polygon is being walked.
func (p Point) EqualXY(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Add returns the componentwise sum of p and q, including Z. Width is not
// meaningful on a sum and is left zero.
func Add(p, q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns p minus q, componentwise, including Z.
func Sub(p, q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// LengthSq returns the squared XY length of p treated as a vector from the
// origin. Z does not participate: all planar distance math in this module
// stays in the XY plane.
func (p Point) LengthSq() int64 {
	return p.X*p.X + p.Y*p.Y
}

// Length returns the XY length of p, rounded down to an int64 via an
// integer-corrected floating point square root. Avoid calling this in a
// tight loop where a squared-length comparison (LongerThan/ShorterThan)
// would do.
func (p Point) Length() int64 {
	return isqrt(p.LengthSq())
}

// LengthMM returns Length() converted from micrometres to millimetres, the
// unit print-time math is done in.
func (p Point) LengthMM() float64 {
	return float64(p.Length()) / 1000.0
}

// ManhattanLength returns |X| + |Y|.
func (p Point) ManhattanLength() int64 {
	return abs64(p.X) + abs64(p.Y)
}

// LongerThan reports whether p's XY length exceeds d, without taking a
// square root.
func (p Point) LongerThan(d int64) bool {
	return p.LengthSq() > d*d
}

// ShorterThan reports whether p's XY length is less than d, without taking
// a square root.
func (p Point) ShorterThan(d int64) bool {
	return p.LengthSq() < d*d
}

// Dist returns the XY distance between a and b.
func Dist(a, b Point) int64 {
	return Sub(b, a).Length()
}

// DistSq returns the squared XY distance between a and b.
func DistSq(a, b Point) int64 {
	return Sub(b, a).LengthSq()
}

// LongerThan reports whether the XY distance between a and b exceeds d,
// without taking a square root.
func LongerThan(a, b Point, d int64) bool {
	return Sub(b, a).LongerThan(d)
}

// ShorterThan reports whether the XY distance between a and b is less than
// d, without taking a square root.
func ShorterThan(a, b Point, d int64) bool {
	return Sub(b, a).ShorterThan(d)
}

// isqrt returns the integer square root of v, saturated to int64, correcting
// float64's rounding error at the boundary.
func isqrt(v int64) int64 {
	if v <= 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(v)))
	for r > 0 && r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
