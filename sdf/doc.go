// Package sdf builds glyph shapes from TrueType outlines and rasterizes them
// into single-channel signed distance fields.
//
// A [Shape] is a set of closed [Contour] values, each an ordered list of
// linear or quadratic [Edge] values. [FromGlyph] converts a decoded
// truetype.Glyph into a Shape, validates that every contour is closed and
// splits contours with fewer than three edges so their orientation can be
// measured.
//
// [Rasterize] samples the shape at every pixel centre of a region. The
// distance to each contour is the edge-minimum pseudo-distance; contour
// windings decide which distance wins where contours nest, so holes such as
// the counter of "O" stay outside. The result is stored as
//
//	clamp(distance / (2 * range), -0.5, 0.5) + 0.5
//
// scaled to a byte, so 128 is the outline, larger values are inside and
// smaller values outside.
//
// # Usage
//
//	shape, err := sdf.FromGlyph(glyph)
//	if err != nil {
//	    return err
//	}
//	shape.FlipY = true
//	sdf.Rasterize(shape, pixmap, region, sdf.Projection{Scale: 1, Translate: offset}, 8)
package sdf
