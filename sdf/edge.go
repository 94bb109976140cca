package sdf

import "math"

// EdgeType classifies edge segments by their geometric type.
type EdgeType int

const (
	// EdgeLinear is a straight line segment between two points.
	EdgeLinear EdgeType = iota

	// EdgeQuadratic is a quadratic Bezier curve (one control point).
	EdgeQuadratic
)

// String returns a string representation of the edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeLinear:
		return "Linear"
	case EdgeQuadratic:
		return "Quadratic"
	default:
		return "Unknown"
	}
}

// Edge is a linear or quadratic segment of a contour.
type Edge struct {
	// Type is the geometric type of this edge.
	Type EdgeType

	// Points contains the control and end points for this edge.
	// Linear: P0 (start), P1 (end)
	// Quadratic: P0 (start), P1 (control), P2 (end)
	Points [3]Point
}

// NewLinearEdge creates a new linear edge from start to end.
func NewLinearEdge(start, end Point) Edge {
	return Edge{
		Type:   EdgeLinear,
		Points: [3]Point{start, end, {}},
	}
}

// NewQuadraticEdge creates a new quadratic Bezier edge. A control point that
// coincides with an endpoint is moved to the chord midpoint, which keeps the
// curve the same while giving it a usable tangent at both ends.
func NewQuadraticEdge(start, control, end Point) Edge {
	if control == start || control == end {
		control = start.Lerp(end, 0.5)
	}
	return Edge{
		Type:   EdgeQuadratic,
		Points: [3]Point{start, control, end},
	}
}

// StartPoint returns the starting point of the edge.
func (e *Edge) StartPoint() Point {
	return e.Points[0]
}

// EndPoint returns the ending point of the edge.
func (e *Edge) EndPoint() Point {
	if e.Type == EdgeQuadratic {
		return e.Points[2]
	}
	return e.Points[1]
}

// PointAt evaluates the edge at parameter t in [0, 1].
func (e *Edge) PointAt(t float64) Point {
	if e.Type == EdgeQuadratic {
		p0, p1, p2 := e.Points[0], e.Points[1], e.Points[2]
		return p0.Lerp(p1, t).Lerp(p1.Lerp(p2, t), t)
	}
	return e.Points[0].Lerp(e.Points[1], t)
}

// SplitInThirds returns three edges that together trace e.
func (e *Edge) SplitInThirds() [3]Edge {
	a, b := e.PointAt(1.0/3), e.PointAt(2.0/3)
	if e.Type == EdgeQuadratic {
		p0, p1, p2 := e.Points[0], e.Points[1], e.Points[2]
		return [3]Edge{
			NewQuadraticEdge(p0, p0.Lerp(p1, 1.0/3), a),
			NewQuadraticEdge(a, p0.Lerp(p1, 5.0/9).Lerp(p1.Lerp(p2, 4.0/9), 0.5), b),
			NewQuadraticEdge(b, p1.Lerp(p2, 2.0/3), p2),
		}
	}
	return [3]Edge{
		NewLinearEdge(e.Points[0], a),
		NewLinearEdge(a, b),
		NewLinearEdge(b, e.Points[1]),
	}
}

// Bounds returns the bounding box of the edge, including curve extrema.
func (e *Edge) Bounds() Rect {
	if e.Type != EdgeQuadratic {
		return emptyRect().include(e.Points[0]).include(e.Points[1])
	}

	p0, p1, p2 := e.Points[0], e.Points[1], e.Points[2]
	bounds := emptyRect().include(p0).include(p2)
	bot := p1.Sub(p0).Sub(p2.Sub(p1))
	if bot.X != 0 {
		if t := (p1.X - p0.X) / bot.X; t > 0 && t < 1 {
			bounds = bounds.include(e.PointAt(t))
		}
	}
	if bot.Y != 0 {
		if t := (p1.Y - p0.Y) / bot.Y; t > 0 && t < 1 {
			bounds = bounds.include(e.PointAt(t))
		}
	}
	return bounds
}

// SignedDistance returns the signed distance from p to the edge and the
// parameter of the closest point. The parameter may fall outside [0, 1]
// when p is nearest to an endpoint; the distance is then tagged with a
// non-zero Dot.
func (e *Edge) SignedDistance(p Point) (SignedDistance, float64) {
	if e.Type == EdgeQuadratic {
		return quadraticSignedDistance(e.Points[0], e.Points[1], e.Points[2], p)
	}
	return linearSignedDistance(e.Points[0], e.Points[1], p)
}

// linearSignedDistance calculates signed distance from point p to segment a-b.
func linearSignedDistance(a, b, p Point) (SignedDistance, float64) {
	aq := p.Sub(a)
	ab := b.Sub(a)
	abLenSq := ab.Dot(ab)
	if abLenSq == 0 {
		return SignedDistance{Distance: -aq.Length(), Dot: 0}, 0
	}

	t := aq.Dot(ab) / abLenSq
	nearest := a
	if t > 0.5 {
		nearest = b
	}
	eq := nearest.Sub(p)
	endpointDistance := eq.Length()

	if t > 0 && t < 1 {
		ortho := ab.Orthonormal().Dot(aq)
		if math.Abs(ortho) < endpointDistance {
			return SignedDistance{Distance: ortho, Dot: 0}, t
		}
	}
	return SignedDistance{
		Distance: nonZeroSign(aq.Cross(ab)) * endpointDistance,
		Dot:      math.Abs(ab.Normalized().Dot(eq.Normalized())),
	}, t
}

// quadraticCandidate is the closest point found so far on a quadratic edge.
type quadraticCandidate struct {
	distance float64
	param    float64
}

// quadraticSignedDistance finds the closest point on a quadratic Bezier by
// solving the cubic d/dt |B(t) - p|^2 = 0 and comparing against both
// endpoints.
func quadraticSignedDistance(p0, p1, p2, p Point) (SignedDistance, float64) {
	qa := p0.Sub(p)
	ab := p1.Sub(p0)
	br := p2.Sub(p1).Sub(ab)

	a := br.Dot(br)
	b := 3 * ab.Dot(br)
	c := 2*ab.Dot(ab) + qa.Dot(br)
	d := qa.Dot(ab)

	best := quadraticCandidate{
		distance: nonZeroSign(ab.Cross(qa)) * qa.Length(),
		param:    -qa.Dot(ab) / ab.Dot(ab),
	}

	bc := p2.Sub(p1)
	pq := p2.Sub(p)
	if dist := nonZeroSign(bc.Cross(pq)) * pq.Length(); math.Abs(dist) < math.Abs(best.distance) {
		best = quadraticCandidate{
			distance: dist,
			param:    p.Sub(p1).Dot(bc) / bc.Dot(bc),
		}
	}

	for _, t := range SolveCubic(a, b, c, d) {
		best = applyQuadraticRoot(p0, p2, ab, br, p, t, best)
	}

	if best.param >= 0 && best.param <= 1 {
		return SignedDistance{Distance: best.distance, Dot: 0}, best.param
	}
	if best.param < 0.5 {
		return SignedDistance{
			Distance: best.distance,
			Dot:      math.Abs(ab.Normalized().Dot(qa.Normalized())),
		}, best.param
	}
	return SignedDistance{
		Distance: best.distance,
		Dot:      math.Abs(bc.Normalized().Dot(pq.Normalized())),
	}, best.param
}

// applyQuadraticRoot returns the better of best and the curve point at root t.
// Roots outside the open interval (0, 1) are ignored.
func applyQuadraticRoot(p0, p2, ab, br, p Point, t float64, best quadraticCandidate) quadraticCandidate {
	if !(t > 0 && t < 1) {
		return best
	}
	onCurve := p0.Add(ab.Mul(2 * t)).Add(br.Mul(t * t))
	offset := onCurve.Sub(p)
	dist := nonZeroSign(p2.Sub(p0).Cross(offset)) * offset.Length()
	if math.Abs(dist) <= math.Abs(best.distance) {
		return quadraticCandidate{distance: dist, param: t}
	}
	return best
}
