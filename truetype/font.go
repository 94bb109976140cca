package truetype

// glyphTableSize is the number of character codes a Font can hold.
// Codes above maxChar are dropped while reading the character map.
const (
	glyphTableSize = 255
	maxChar        = glyphTableSize - 1
)

// Vec2 is a scaled 2D size or offset.
type Vec2 struct {
	X, Y float64
}

// Point is a scaled outline point. Off-curve points are quadratic control
// points.
type Point struct {
	X, Y    float64
	OnCurve bool
}

// Contour is a contiguous run of a glyph's points.
type Contour struct {
	Start  int
	Length int
}

// Glyph is one decoded simple glyph.
type Glyph struct {
	// ID is the glyph index in the font.
	ID uint16

	// Char is the character code (0..254) that maps to this glyph.
	Char rune

	// Points holds every outline point; Contours index into it.
	Points   []Point
	Contours []Contour

	// Advance is the horizontal advance width.
	Advance float64

	// Size is the outline bounding box size (xMax-xMin, yMax-yMin).
	Size Vec2

	// Bearing is the top-left corner of the bounding box (xMin, yMax).
	Bearing Vec2
}

// Empty reports whether the glyph has no outline, like the space character.
func (g *Glyph) Empty() bool {
	return len(g.Contours) == 0
}

// ContourPoints returns the points of contour i without copying.
func (g *Glyph) ContourPoints(i int) []Point {
	c := g.Contours[i]
	return g.Points[c.Start : c.Start+c.Length]
}

// Font is the result of Parse.
type Font struct {
	UnitsPerEm uint16
	NumGlyphs  int

	// Size is the requested em size; Scale is Size/UnitsPerEm.
	Size  float64
	Scale float64

	Ascent     float64
	Descent    float64
	LineHeight float64

	// Kerning maps KerningKey(left, right) to a scaled horizontal offset.
	// It is nil when the font has no usable kern table.
	Kerning map[uint16]float64

	glyphs [glyphTableSize]*Glyph
}

// Glyph returns the glyph mapped to r, or nil.
func (f *Font) Glyph(r rune) *Glyph {
	if r < 0 || r > maxChar {
		return nil
	}
	return f.glyphs[r]
}

// Glyphs returns every decoded glyph in character code order.
func (f *Font) Glyphs() []*Glyph {
	var out []*Glyph
	for _, g := range f.glyphs {
		if g != nil {
			out = append(out, g)
		}
	}
	return out
}

// KerningKey packs a character pair into the key used by Font.Kerning.
func KerningKey(left, right rune) uint16 {
	return uint16(left)<<8 | uint16(right)&0xFF
}
