package truetype

import "fmt"

// readCmap resolves glyph ids for the wanted characters from the first
// Unicode format 4 subtable.
func (p *parser) readCmap() error {
	r := p.table("cmap")
	r.skip(2) // version
	numRecords := int(r.u16())
	var offset uint32
	for range numRecords {
		platform := r.u16()
		encoding := r.u16()
		off := r.u32()
		if offset == 0 && (platform == 0 || (platform == 3 && encoding == 1)) {
			offset = off
		}
	}
	if r.err != nil {
		return r.err
	}
	if offset == 0 {
		return &FormatError{Table: "cmap", Reason: "no unicode character map"}
	}

	r.seek(int(offset))
	format := r.u16()
	if r.err != nil {
		return r.err
	}
	if format != 4 {
		return &UnsupportedError{Table: "cmap", Feature: fmt.Sprintf("subtable format %d", format)}
	}

	r.skip(4) // length, language
	segCount := int(r.u16() / 2)
	r.skip(6) // searchRange, entrySelector, rangeShift
	endCodes := r.u16s(segCount)
	r.skip(2) // reservedPad
	startCodes := r.u16s(segCount)
	deltas := r.u16s(segCount)
	rangeBase := r.pos
	rangeOffsets := r.u16s(segCount)
	if r.err != nil {
		return r.err
	}

	for i := range segCount {
		start, end := int(startCodes[i]), int(endCodes[i])
		if start > maxChar {
			continue
		}
		end = min(end, maxChar)

		for c := start; c <= end; c++ {
			if !p.wanted(rune(c)) {
				continue
			}
			var id uint16
			if rangeOffsets[i] == 0 {
				id = uint16(c) + deltas[i]
			} else {
				r.seek(rangeBase + 2*i + int(rangeOffsets[i]) + 2*(c-start))
				id = r.u16()
				if r.err != nil {
					return r.err
				}
				if id != 0 {
					id += deltas[i]
				}
			}
			if err := p.mapGlyph(rune(c), id); err != nil {
				return err
			}
		}
	}
	return nil
}

// mapGlyph records that character c uses glyph id. Glyph 0 is the missing
// glyph and is not mapped.
func (p *parser) mapGlyph(c rune, id uint16) error {
	if id == 0 {
		return nil
	}
	if int(id) >= len(p.byID) {
		return &FormatError{Table: "cmap", Reason: fmt.Sprintf("glyph id %d for character %#02x exceeds glyph count %d", id, c, len(p.byID))}
	}
	if p.font.glyphs[c] != nil {
		return &FormatError{Table: "cmap", Reason: fmt.Sprintf("multiple definitions for character %#02x", c)}
	}
	g := &Glyph{ID: id, Char: c}
	p.font.glyphs[c] = g
	p.byID[id] = g
	return nil
}
