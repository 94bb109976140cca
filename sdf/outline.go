package sdf

import "github.com/gogpu/sdffont/truetype"

// FromGlyph converts a TrueType glyph outline to a Shape.
//
// Each contour starts at its first on-curve point, or at the midpoint of
// its last and first points when every point is off-curve. Runs of
// off-curve points are split by implied on-curve midpoints, so every
// quadratic edge has exactly one control point. The contour is closed back
// to its start with a quadratic edge when the last point is off-curve and
// with a linear edge otherwise.
//
// The returned shape is validated and normalized. It uses the glyph's
// coordinate space with y up; callers rendering into an image set FlipY.
func FromGlyph(g *truetype.Glyph) (*Shape, error) {
	shape := &Shape{}
	if g == nil || g.Empty() {
		return shape, nil
	}

	for i := range g.Contours {
		var c Contour
		appendContour(&c, g.ContourPoints(i))
		shape.Contours = append(shape.Contours, c)
	}

	if err := shape.Validate(); err != nil {
		return nil, err
	}
	shape.Normalize()
	return shape, nil
}

// appendContour appends the edges of one closed TrueType contour to c.
func appendContour(c *Contour, pts []truetype.Point) {
	n := len(pts)
	if n < 2 {
		return
	}

	first := -1
	for i, p := range pts {
		if p.OnCurve {
			first = i
			break
		}
	}

	var start Point
	walk := make([]truetype.Point, 0, n+1)
	if first < 0 {
		start = toPoint(pts[n-1]).Lerp(toPoint(pts[0]), 0.5)
		walk = append(walk, pts...)
	} else {
		start = toPoint(pts[first])
		walk = append(walk, pts[first+1:]...)
		walk = append(walk, pts[:first]...)
	}
	walk = append(walk, truetype.Point{X: start.X, Y: start.Y, OnCurve: true})

	last := start
	var control Point
	hasControl := false
	for _, tp := range walk {
		p := toPoint(tp)
		if !tp.OnCurve {
			if hasControl {
				mid := control.Lerp(p, 0.5)
				addQuadratic(c, last, control, mid)
				last = mid
			}
			control = p
			hasControl = true
			continue
		}

		if hasControl {
			addQuadratic(c, last, control, p)
			hasControl = false
		} else if p != last {
			// Skip degenerate lines
			c.AddEdge(NewLinearEdge(last, p))
		}
		last = p
	}
}

// addQuadratic appends a quadratic edge unless all three points coincide.
func addQuadratic(c *Contour, start, control, end Point) {
	if start == end && control == start {
		return
	}
	c.AddEdge(NewQuadraticEdge(start, control, end))
}

func toPoint(p truetype.Point) Point {
	return Point{X: p.X, Y: p.Y}
}
