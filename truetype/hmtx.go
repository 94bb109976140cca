package truetype

import "fmt"

// readMetrics decodes the vertical metrics from hhea and the advance width of
// every mapped glyph from hmtx.
func (p *parser) readMetrics() error {
	h := p.table("hhea")
	h.skip(4) // version
	ascent := h.i16()
	descent := h.i16()
	h.seek(34)
	numMetrics := int(h.u16())
	if h.err != nil {
		return h.err
	}

	f := p.font
	f.Ascent = float64(ascent) * p.scale
	f.Descent = float64(descent) * p.scale
	f.LineHeight = f.Ascent - f.Descent

	m := p.table("hmtx")
	for _, g := range f.glyphs {
		if g == nil {
			continue
		}
		// Glyphs past numberOfHMetrics share the last advance and only store
		// a left side bearing.
		if int(g.ID) >= numMetrics {
			return &UnsupportedError{
				Table:   "hmtx",
				Feature: fmt.Sprintf("advance for glyph %d in trailing bearing run", g.ID),
			}
		}
		m.seek(int(g.ID) * 4)
		g.Advance = float64(m.u16()) * p.scale
		if m.err != nil {
			return m.err
		}
	}
	return nil
}
