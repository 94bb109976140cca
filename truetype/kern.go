package truetype

import "fmt"

// readKern decodes format 0 kerning pairs between mapped glyphs. The kern
// table is optional.
func (p *parser) readKern() error {
	if _, ok := p.tables["kern"]; !ok {
		return nil
	}

	r := p.table("kern")
	version := r.u16()
	numTables := int(r.u16())
	if r.err != nil {
		return r.err
	}
	if version != 0 {
		return &UnsupportedError{Table: "kern", Feature: fmt.Sprintf("table version %d", version)}
	}

	pos := r.pos
	for range numTables {
		r.seek(pos)
		r.skip(2) // subtable version
		length := int(r.u16())
		coverage := r.u16()
		if r.err != nil {
			return r.err
		}
		if format := coverage >> 8; format != 0 {
			return &UnsupportedError{Table: "kern", Feature: fmt.Sprintf("subtable format %d", format)}
		}
		if length < 14 {
			return &FormatError{Table: "kern", Reason: fmt.Sprintf("subtable length %d too short", length)}
		}

		numPairs := int(r.u16())
		r.skip(6) // searchRange, entrySelector, rangeShift
		for range numPairs {
			left, right, value := r.u16(), r.u16(), r.i16()
			if r.err != nil {
				return r.err
			}
			lg, rg := p.glyphByID(left), p.glyphByID(right)
			if lg == nil || rg == nil {
				continue
			}
			if p.font.Kerning == nil {
				p.font.Kerning = make(map[uint16]float64)
			}
			p.font.Kerning[KerningKey(lg.Char, rg.Char)] = float64(value) * p.scale
		}
		pos += length
	}
	return nil
}
