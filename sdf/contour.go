package sdf

// Contour represents a closed contour of edges.
// A glyph typically consists of one or more contours.
type Contour struct {
	// Edges is the list of edges that form this contour.
	Edges []Edge
}

// AddEdge appends an edge to the contour.
func (c *Contour) AddEdge(e Edge) {
	c.Edges = append(c.Edges, e)
}

// Bounds returns the bounding box of all edges in the contour.
func (c *Contour) Bounds() Rect {
	if len(c.Edges) == 0 {
		return Rect{}
	}
	bounds := emptyRect()
	for i := range c.Edges {
		bounds = bounds.Union(c.Edges[i].Bounds())
	}
	return bounds
}

// Winding returns the orientation of the contour: 1 for clockwise (a filled
// TrueType outline), -1 for counter-clockwise (a hole) and 0 when empty or
// degenerate. Contours of one or two edges are sampled at interior points
// so a closed curve still has an area.
func (c *Contour) Winding() int {
	edges := c.Edges
	var total float64
	switch len(edges) {
	case 0:
		return 0
	case 1:
		a := edges[0].PointAt(0)
		b := edges[0].PointAt(1.0 / 3)
		d := edges[0].PointAt(2.0 / 3)
		total = shoelace(a, b) + shoelace(b, d) + shoelace(d, a)
	case 2:
		a := edges[0].PointAt(0)
		b := edges[0].PointAt(0.5)
		d := edges[1].PointAt(0)
		e := edges[1].PointAt(0.5)
		total = shoelace(a, b) + shoelace(b, d) + shoelace(d, e) + shoelace(e, a)
	default:
		prev := edges[len(edges)-1].PointAt(0)
		for i := range edges {
			cur := edges[i].PointAt(0)
			total += shoelace(prev, cur)
			prev = cur
		}
	}
	return sign(total)
}

// shoelace is one term of the trapezoid area sum. Summed over a closed
// polygon it is positive for clockwise order with y up.
func shoelace(a, b Point) float64 {
	return (b.X - a.X) * (a.Y + b.Y)
}

// Distance returns the closest signed distance from p to any edge.
func (c *Contour) Distance(p Point) SignedDistance {
	best := Infinite()
	for i := range c.Edges {
		if d, _ := c.Edges[i].SignedDistance(p); d.IsCloserThan(best) {
			best = d
		}
	}
	return best
}

// Shape represents a complete glyph shape consisting of contours.
type Shape struct {
	// Contours are the closed paths that make up the shape.
	Contours []Contour

	// FlipY writes rows bottom-up, for shapes whose y axis points up.
	FlipY bool
}

// Bounds returns the bounding box of every contour.
func (s *Shape) Bounds() Rect {
	bounds := emptyRect()
	for i := range s.Contours {
		if len(s.Contours[i].Edges) > 0 {
			bounds = bounds.Union(s.Contours[i].Bounds())
		}
	}
	if bounds.MinX > bounds.MaxX {
		return Rect{}
	}
	return bounds
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	count := 0
	for _, c := range s.Contours {
		count += len(c.Edges)
	}
	return count
}

// Validate checks that every contour is closed: each edge starts exactly
// where the previous one ends, wrapping from the last edge to the first.
func (s *Shape) Validate() error {
	for ci, c := range s.Contours {
		if len(c.Edges) == 0 {
			continue
		}
		corner := c.Edges[len(c.Edges)-1].EndPoint()
		for ei := range c.Edges {
			if c.Edges[ei].StartPoint() != corner {
				return &GeometryError{Contour: ci, Edge: ei}
			}
			corner = c.Edges[ei].EndPoint()
		}
	}
	return nil
}

// Normalize splits every contour of one or two edges into thirds, so each
// non-empty contour has at least three edges.
func (s *Shape) Normalize() {
	for i := range s.Contours {
		c := &s.Contours[i]
		if n := len(c.Edges); n == 0 || n >= 3 {
			continue
		}
		split := make([]Edge, 0, 3*len(c.Edges))
		for j := range c.Edges {
			thirds := c.Edges[j].SplitInThirds()
			split = append(split, thirds[:]...)
		}
		c.Edges = split
	}
}
