package sdffont

import "github.com/gogpu/sdffont/truetype"

// GlyphMetrics describes one imported glyph. Sizes and offsets are in
// pixels at Resolution; UVs are normalized atlas coordinates.
type GlyphMetrics struct {
	Char    rune
	Advance float32

	// Bearing is the offset from the pen position to the top-left corner
	// of the glyph box, with y up.
	Bearing [2]float32

	// Size is the glyph box size. Glyphs without an outline use the
	// advance and the line height.
	Size [2]float32

	// UVMin and UVMax bound the glyph box in the atlas, excluding padding
	// but including the distance range. Both are zero for glyphs without
	// an outline.
	UVMin [2]float32
	UVMax [2]float32
}

// Kerning maps a character pair key (left<<8 | right) to a horizontal
// offset in pixels.
type Kerning map[uint16]float32

// Lookup returns the offset for a pair, or 0 when the pair is absent.
func (k Kerning) Lookup(left, right rune) float32 {
	return k[truetype.KerningKey(left, right)]
}

// FontAsset is an imported font: a distance field atlas, per-glyph
// metrics and kerning.
type FontAsset struct {
	// Resolution is the em size in pixels the atlas was rendered at.
	Resolution int

	LineHeight float32
	Ascent     float32

	Atlas *Pixmap

	// Glyphs are in import order.
	Glyphs []GlyphMetrics

	// Kerning is nil when the font has no kerning pairs.
	Kerning Kerning
}

// Glyph returns the metrics for r.
func (a *FontAsset) Glyph(r rune) (GlyphMetrics, bool) {
	for _, g := range a.Glyphs {
		if g.Char == r {
			return g, true
		}
	}
	return GlyphMetrics{}, false
}
