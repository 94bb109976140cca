package sdf

import (
	"image"
	"math"
)

// PixelSink receives encoded distance values. Pixmap types with a single
// 8-bit channel implement it.
type PixelSink interface {
	SetPixel(x, y int, v uint8)
}

// Projection maps pixel space to shape space: a pixel centre p lands at
// p/Scale - Translate. Scale is uniform on both axes.
type Projection struct {
	Scale     float64
	Translate Point
}

// Unproject maps a pixel-space position to shape space.
func (p Projection) Unproject(x, y float64) Point {
	return Point{X: x/p.Scale - p.Translate.X, Y: y/p.Scale - p.Translate.Y}
}

// Rasterize writes the signed distance field of shape into region of dst.
//
// Region coordinates address dst directly. Pixel (x, y) of the region is
// sampled at its centre, mapped through proj; when shape.FlipY is set the
// value is written to row region.Dy()-y-1 instead. Distances are encoded
// with Encode over a falloff of rng shape units, so the outline sits at 127.
func Rasterize(shape *Shape, dst PixelSink, region image.Rectangle, proj Projection, rng float64) error {
	if !(rng > 0) {
		return ErrInvalidRange
	}
	if !(proj.Scale > 0) {
		return ErrInvalidScale
	}

	f := newField(shape)
	w, h := region.Dx(), region.Dy()
	for y := 0; y < h; y++ {
		row := y
		if shape.FlipY {
			row = h - y - 1
		}
		for x := 0; x < w; x++ {
			p := proj.Unproject(float64(x)+0.5, float64(y)+0.5)
			dst.SetPixel(region.Min.X+x, region.Min.Y+row, Encode(f.at(p), rng))
		}
	}
	return nil
}

// Distance returns the resolved signed distance from p to the shape:
// positive inside filled regions, negative outside and inside holes.
func (s *Shape) Distance(p Point) float64 {
	return newField(s).at(p)
}

// Encode maps a signed distance to a byte: clamp(d/(2*rng), -.5, .5) + .5,
// scaled to 0..255.
func Encode(d, rng float64) uint8 {
	v := d / (2 * rng)
	v = math.Max(-0.5, math.Min(0.5, v)) + 0.5
	return uint8(v * 255)
}

// field evaluates distances for one shape. Windings are computed once.
type field struct {
	shape     *Shape
	windings  []int
	contourSD []float64
}

func newField(s *Shape) *field {
	f := &field{
		shape:     s,
		windings:  make([]int, len(s.Contours)),
		contourSD: make([]float64, len(s.Contours)),
	}
	for i := range s.Contours {
		f.windings[i] = s.Contours[i].Winding()
	}
	return f
}

func (f *field) at(p Point) float64 {
	for i := range f.shape.Contours {
		f.contourSD[i] = f.shape.Contours[i].Distance(p).Distance
	}
	return resolveDistance(f.windings, f.contourSD)
}

// resolveDistance combines per-contour distances into one signed distance.
//
// The closest non-negative distance of a clockwise contour competes with
// the closest non-positive distance of a counter-clockwise contour, and
// the nearer one picks the sign. Any contour with a different winding that
// is strictly closer than the result then overrides it; equal magnitudes
// keep the chosen side.
func resolveDistance(windings []int, contourSD []float64) float64 {
	inf := Infinite().Distance
	posDist, negDist := inf, -inf
	for i, d := range contourSD {
		if windings[i] > 0 && d >= 0 && math.Abs(d) < math.Abs(posDist) {
			posDist = d
		}
		if windings[i] < 0 && d <= 0 && math.Abs(d) < math.Abs(negDist) {
			negDist = d
		}
	}

	sd := inf
	winding := 0
	switch {
	case posDist >= 0 && math.Abs(posDist) <= math.Abs(negDist):
		sd, winding = posDist, 1
		for i, d := range contourSD {
			if windings[i] > 0 && d > sd && math.Abs(d) < math.Abs(negDist) {
				sd = d
			}
		}
	case negDist <= 0 && math.Abs(negDist) <= math.Abs(posDist):
		sd, winding = negDist, -1
		for i, d := range contourSD {
			if windings[i] < 0 && d < sd && math.Abs(d) < math.Abs(posDist) {
				sd = d
			}
		}
	}

	for i, d := range contourSD {
		if windings[i] != winding && math.Abs(d) < math.Abs(sd) {
			sd = d
		}
	}
	return sd
}
