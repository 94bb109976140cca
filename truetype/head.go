package truetype

import "fmt"

const headMagic = 0x5F0F3CF5

// readHead decodes unitsPerEm and indexToLocFormat and fixes the scale used
// by every later stage.
func (p *parser) readHead() error {
	r := p.table("head")
	r.seek(12)
	magic := r.u32()
	r.skip(2) // flags
	unitsPerEm := r.u16()
	r.seek(50)
	locFormat := r.i16()
	if r.err != nil {
		return r.err
	}

	if magic != headMagic {
		return &FormatError{Table: "head", Reason: fmt.Sprintf("invalid magic number %#08x", magic)}
	}
	if unitsPerEm < 16 || unitsPerEm > 16384 {
		return &FormatError{Table: "head", Reason: fmt.Sprintf("unitsPerEm %d out of range", unitsPerEm)}
	}
	if locFormat != 0 && locFormat != 1 {
		return &FormatError{Table: "head", Reason: fmt.Sprintf("invalid indexToLocFormat %d", locFormat)}
	}

	p.locFormat = locFormat
	p.scale = p.size / float64(unitsPerEm)
	p.font.UnitsPerEm = unitsPerEm
	p.font.Scale = p.scale
	return nil
}

// readMaxp sizes the by-id glyph table.
func (p *parser) readMaxp() error {
	r := p.table("maxp")
	r.skip(4) // version
	numGlyphs := int(r.u16())
	if r.err != nil {
		return r.err
	}
	p.byID = make([]*Glyph, numGlyphs)
	p.font.NumGlyphs = numGlyphs
	return nil
}
