package truetype

import "strings"

// parser carries the state shared by the table decoders of a single Parse call.
type parser struct {
	data   []byte
	size   float64
	filter string

	tables    map[string]tableRecord
	scale     float64
	locFormat int16
	byID      []*Glyph

	font *Font
}

// Parse decodes a TrueType font. Coordinates and metrics are scaled so the em
// square measures size units. Only characters in chars are decoded; an empty
// chars selects every code from 0 to 254.
//
// Tables are decoded in dependency order and the first error aborts the parse.
// All table checksums except head's are verified before any glyph is read.
func Parse(data []byte, size float64, chars string) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if !(size > 0) {
		return nil, ErrInvalidSize
	}

	p := &parser{
		data:   data,
		size:   size,
		filter: chars,
		font:   &Font{Size: size},
	}

	stages := []func() error{
		p.readDirectory,
		p.readHead,
		p.readMaxp,
		p.readCmap,
		p.readMetrics,
		p.readGlyphs,
		p.readKern,
	}
	for _, stage := range stages {
		if err := stage(); err != nil {
			return nil, err
		}
	}

	slogger().Debug("truetype: parsed font",
		"unitsPerEm", p.font.UnitsPerEm,
		"numGlyphs", p.font.NumGlyphs,
		"scale", p.scale,
		"kerningPairs", len(p.font.Kerning))
	return p.font, nil
}

// wanted reports whether c passes the character filter.
func (p *parser) wanted(c rune) bool {
	return p.filter == "" || strings.ContainsRune(p.filter, c)
}

// table returns a reader over the named table. The directory stage has
// already checked that the table exists and lies inside the data.
func (p *parser) table(tag string) *reader {
	rec := p.tables[tag]
	return newReader(tag, p.data[rec.offset:rec.offset+rec.length])
}

func (p *parser) glyphByID(id uint16) *Glyph {
	if int(id) >= len(p.byID) {
		return nil
	}
	return p.byID[id]
}
