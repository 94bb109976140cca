package truetype

import "fmt"

// Simple glyph flag bits.
const (
	flagOnCurve = 1 << iota
	flagXShort
	flagYShort
	flagRepeat
	flagXSame
	flagYSame
)

// readGlyphs locates every mapped glyph through loca and decodes its outline.
func (p *parser) readGlyphs() error {
	loca := p.table("loca")
	glyf := p.table("glyf")
	for _, g := range p.font.glyphs {
		if g == nil {
			continue
		}

		var start, end int
		if p.locFormat == 1 {
			loca.seek(int(g.ID) * 4)
			start, end = int(loca.u32()), int(loca.u32())
		} else {
			loca.seek(int(g.ID) * 2)
			start, end = 2*int(loca.u16()), 2*int(loca.u16())
		}
		if loca.err != nil {
			return loca.err
		}
		if end < start || end > len(glyf.data) {
			return &FormatError{Table: "loca", Reason: fmt.Sprintf("invalid range %d..%d for glyph %d", start, end, g.ID)}
		}
		if start == end {
			continue
		}
		if err := p.readGlyph(newReader("glyf", glyf.data[start:end]), g); err != nil {
			return err
		}
		slogger().Debug("truetype: glyph", "char", string(g.Char), "id", g.ID,
			"contours", len(g.Contours), "points", len(g.Points))
	}
	return nil
}

// readGlyph decodes one simple glyph description.
func (p *parser) readGlyph(r *reader, g *Glyph) error {
	numContours := r.i16()
	xMin, yMin, xMax, yMax := r.i16(), r.i16(), r.i16(), r.i16()
	if r.err != nil {
		return r.err
	}
	if numContours < 0 {
		return &UnsupportedError{Table: "glyf", Feature: fmt.Sprintf("compound glyph %d", g.ID)}
	}
	if numContours == 0 {
		return nil
	}

	endPoints := r.u16s(int(numContours))
	instructionLength := int(r.u16())
	r.skip(instructionLength)
	if r.err != nil {
		return r.err
	}

	g.Contours = make([]Contour, numContours)
	start := 0
	for i, e := range endPoints {
		end := int(e)
		if end < start {
			return &FormatError{Table: "glyf", Reason: fmt.Sprintf("glyph %d: contour end points out of order", g.ID)}
		}
		g.Contours[i] = Contour{Start: start, Length: end - start + 1}
		start = end + 1
	}
	numPoints := start

	flags := make([]byte, numPoints)
	for i := 0; i < numPoints; {
		f := r.u8()
		flags[i] = f
		i++
		if f&flagRepeat != 0 {
			for n := int(r.u8()); n > 0 && i < numPoints; n-- {
				flags[i] = f
				i++
			}
		}
		if r.err != nil {
			return r.err
		}
	}

	xs := readCoordinates(r, flags, flagXShort, flagXSame)
	ys := readCoordinates(r, flags, flagYShort, flagYSame)
	if r.err != nil {
		return r.err
	}

	g.Points = make([]Point, numPoints)
	for i := range g.Points {
		g.Points[i] = Point{
			X:       float64(xs[i]) * p.scale,
			Y:       float64(ys[i]) * p.scale,
			OnCurve: flags[i]&flagOnCurve != 0,
		}
	}
	g.Size = Vec2{
		X: (float64(xMax) - float64(xMin)) * p.scale,
		Y: (float64(yMax) - float64(yMin)) * p.scale,
	}
	g.Bearing = Vec2{X: float64(xMin) * p.scale, Y: float64(yMax) * p.scale}
	return nil
}

// readCoordinates decodes one axis of delta-encoded coordinates. A short
// vector is an unsigned byte whose sign comes from the same bit; otherwise
// the same bit means "unchanged" and a clear bit means an int16 delta.
func readCoordinates(r *reader, flags []byte, short, same byte) []int32 {
	out := make([]int32, len(flags))
	var v int32
	for i, f := range flags {
		switch {
		case f&short != 0:
			d := int32(r.u8())
			if f&same == 0 {
				d = -d
			}
			v += d
		case f&same == 0:
			v += int32(r.i16())
		}
		out[i] = v
	}
	return out
}
