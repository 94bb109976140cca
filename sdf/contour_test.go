package sdf

import (
	"errors"
	"math"
	"testing"
)

// polygon returns a closed contour of linear edges through pts.
func polygon(pts ...Point) Contour {
	var c Contour
	for i, p := range pts {
		c.AddEdge(NewLinearEdge(p, pts[(i+1)%len(pts)]))
	}
	return c
}

// square is a clockwise 10x10 square with y up.
func square() Contour {
	return polygon(Point{0, 0}, Point{0, 10}, Point{10, 10}, Point{10, 0})
}

// lens is a clockwise two-edge contour.
func lens() Contour {
	return Contour{Edges: []Edge{
		NewQuadraticEdge(Point{0, 0}, Point{5, 10}, Point{10, 0}),
		NewQuadraticEdge(Point{10, 0}, Point{5, -10}, Point{0, 0}),
	}}
}

func reversed(c Contour) Contour {
	var r Contour
	for i := len(c.Edges) - 1; i >= 0; i-- {
		e := c.Edges[i]
		if e.Type == EdgeQuadratic {
			r.AddEdge(NewQuadraticEdge(e.Points[2], e.Points[1], e.Points[0]))
		} else {
			r.AddEdge(NewLinearEdge(e.Points[1], e.Points[0]))
		}
	}
	return r
}

func TestContourWinding(t *testing.T) {
	tests := []struct {
		name string
		c    Contour
		want int
	}{
		{"empty", Contour{}, 0},
		{"clockwise square", square(), 1},
		{"counter-clockwise square", reversed(square()), -1},
		{"clockwise lens", lens(), 1},
		{"counter-clockwise lens", reversed(lens()), -1},
		{"clockwise triangle", polygon(Point{0, 0}, Point{12, 24}, Point{24, 0}), 1},
		{"collinear", polygon(Point{0, 0}, Point{5, 0}, Point{10, 0}), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Winding(); got != tt.want {
				t.Errorf("Winding() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContourBounds(t *testing.T) {
	if got, want := lens().Bounds(), (Rect{0, -5, 10, 5}); got != want {
		t.Errorf("lens Bounds() = %+v, want %+v", got, want)
	}
	empty := Contour{}
	if got := empty.Bounds(); got != (Rect{}) {
		t.Errorf("empty Bounds() = %+v, want zero", got)
	}
}

func TestContourDistance(t *testing.T) {
	c := square()
	tests := []struct {
		p    Point
		want float64
	}{
		{Point{5, 5}, 5},
		{Point{2, 5}, 2},
		{Point{15, 5}, -5},
		{Point{5, 12}, -2},
		{Point{13, 14}, -5},
	}

	for _, tt := range tests {
		if got := c.Distance(tt.p).Distance; math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Distance(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		wantErr *GeometryError
	}{
		{"closed", Shape{Contours: []Contour{square(), lens()}}, nil},
		{"empty contour", Shape{Contours: []Contour{{}}}, nil},
		{
			"open at wrap",
			Shape{Contours: []Contour{{Edges: []Edge{
				NewLinearEdge(Point{0, 0}, Point{10, 0}),
				NewLinearEdge(Point{10, 0}, Point{10, 10}),
				NewLinearEdge(Point{10, 10}, Point{0, 1}),
			}}}},
			&GeometryError{Contour: 0, Edge: 0},
		},
		{
			"gap in second contour",
			Shape{Contours: []Contour{square(), {Edges: []Edge{
				NewLinearEdge(Point{0, 0}, Point{10, 0}),
				NewLinearEdge(Point{10, 1}, Point{0, 0}),
			}}}},
			&GeometryError{Contour: 1, Edge: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var ge *GeometryError
			if !errors.As(err, &ge) {
				t.Fatalf("Validate() = %v, want *GeometryError", err)
			}
			if *ge != *tt.wantErr {
				t.Errorf("Validate() = %+v, want %+v", *ge, *tt.wantErr)
			}
		})
	}
}

func TestGeometryErrorMessage(t *testing.T) {
	err := &GeometryError{Contour: 0, Edge: 1}
	if got, want := err.Error(), "sdf: contour 0 is not closed at edge 1"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestShapeNormalize(t *testing.T) {
	one := Contour{Edges: []Edge{NewQuadraticEdge(Point{0, 0}, Point{5, 10}, Point{0, 0})}}
	shape := Shape{Contours: []Contour{one, lens(), square(), {}}}
	shape.Normalize()

	wantEdges := []int{3, 6, 4, 0}
	for i, c := range shape.Contours {
		if got := len(c.Edges); got != wantEdges[i] {
			t.Errorf("contour %d has %d edges, want %d", i, got, wantEdges[i])
		}
	}
	if err := shape.Validate(); err != nil {
		t.Errorf("Validate() after Normalize = %v", err)
	}
	if got := shape.Contours[1].Winding(); got != 1 {
		t.Errorf("lens Winding() after Normalize = %d, want 1", got)
	}
	if got := shape.EdgeCount(); got != 13 {
		t.Errorf("EdgeCount() = %d, want 13", got)
	}
}

func TestShapeBounds(t *testing.T) {
	shape := Shape{Contours: []Contour{square(), lens(), {}}}
	if got, want := shape.Bounds(), (Rect{0, -5, 10, 10}); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	empty := Shape{}
	if got := empty.Bounds(); got != (Rect{}) {
		t.Errorf("empty Bounds() = %+v, want zero", got)
	}
}
