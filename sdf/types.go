package sdf

import "math"

// Point represents a 2D point with float64 precision.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p * scalar.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalized returns a unit vector in the same direction, or the zero vector.
func (p Point) Normalized() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{p.X / length, p.Y / length}
}

// Orthonormal returns the unit vector perpendicular to p, rotated clockwise.
// The dot product of a point offset with it has the sign of Cross(offset, p).
func (p Point) Orthonormal() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{p.Y / length, -p.X / length}
}

// Lerp returns linear interpolation between p and q: (1-t)*p + t*q.
// It is exact at t = 0 and t = 1.
func (p Point) Lerp(q Point, t float64) Point {
	s := 1 - t
	return Point{
		s*p.X + t*q.X,
		s*p.Y + t*q.Y,
	}
}

// Rect represents a 2D rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// emptyRect is the identity for Union.
func emptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

// include grows r to contain p.
func (r Rect) include(p Point) Rect {
	return Rect{
		MinX: min(r.MinX, p.X),
		MinY: min(r.MinY, p.Y),
		MaxX: max(r.MaxX, p.X),
		MaxY: max(r.MaxY, p.Y),
	}
}

// SignedDistance is a distance to an edge with a tie-breaker.
type SignedDistance struct {
	// Distance is positive on the right of the edge direction. Outer
	// TrueType contours run clockwise, so positive means inside.
	Distance float64

	// Dot measures how far the closest point is from being perpendicular.
	// It is zero inside an edge and grows toward 1 past an endpoint, and is
	// only used when two distances are equal.
	Dot float64
}

// Infinite returns a signed distance representing infinity.
func Infinite() SignedDistance {
	return SignedDistance{Distance: -math.MaxFloat64, Dot: 1}
}

// IsCloserThan returns true if d is closer to the edge than other.
func (d SignedDistance) IsCloserThan(other SignedDistance) bool {
	absD := math.Abs(d.Distance)
	absO := math.Abs(other.Distance)
	if absD != absO {
		return absD < absO
	}
	// Equal absolute distance: the more perpendicular one wins.
	return d.Dot < other.Dot
}

// nonZeroSign returns 1 for positive n and -1 otherwise.
func nonZeroSign(n float64) float64 {
	if n > 0 {
		return 1
	}
	return -1
}

// sign returns -1, 0 or 1.
func sign(n float64) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
