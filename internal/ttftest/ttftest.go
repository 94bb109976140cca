// Package ttftest builds small, valid TrueType fonts in memory for tests.
//
// Glyph i of Font.Glyphs gets glyph id i+1; id 0 is an empty .notdef glyph.
// Outlines are encoded with short vectors and repeated flags wherever
// possible so decoders see every flag combination.
package ttftest

import (
	"encoding/binary"
	"slices"
	"sort"
)

// Point is an outline point in font units.
type Point struct {
	X, Y    int16
	OnCurve bool
}

// Glyph describes one glyph. A glyph without contours is empty.
type Glyph struct {
	Char     rune
	Advance  uint16
	Contours [][]Point

	// Compound writes a composite glyph header instead of an outline.
	Compound bool
}

// Segment maps Start..End to consecutive glyph ids starting at FirstID.
// Indirect segments resolve through the glyph id array.
type Segment struct {
	Start, End rune
	FirstID    uint16
	Indirect   bool
}

// KernPair is a kerning adjustment between two characters.
type KernPair struct {
	Left, Right rune
	Value       int16
}

// Font describes the font to build. Zero values select sensible defaults.
type Font struct {
	UnitsPerEm uint16
	Ascent     int16
	Descent    int16
	Glyphs     []Glyph

	// Segments overrides the default one-direct-segment-per-glyph cmap.
	Segments []Segment

	Kern []KernPair

	// KernFormat sets the kern subtable format stored in the coverage field.
	KernFormat uint8

	// CmapFormat overrides the format written in the cmap subtable header.
	CmapFormat uint16

	// CmapPlatform and CmapEncoding override the encoding record (default 3, 1).
	CmapPlatform uint16
	CmapEncoding uint16

	// HMetrics limits numberOfHMetrics; 0 writes a metric for every glyph.
	HMetrics int

	LongLoca bool

	// Version overrides the sfnt version.
	Version uint32

	// Corrupt flips a byte in the named table after checksums are computed.
	Corrupt string
}

type table struct {
	tag  string
	data []byte
}

// Build encodes the font.
func (f *Font) Build() []byte {
	upem := f.UnitsPerEm
	if upem == 0 {
		upem = 1000
	}
	numGlyphs := len(f.Glyphs) + 1

	glyf, loca := f.glyfLoca()
	tables := []table{
		{"cmap", f.cmap()},
		{"glyf", glyf},
		{"head", f.head(upem)},
		{"hhea", f.hhea()},
		{"hmtx", f.hmtx()},
		{"loca", loca},
		{"maxp", be(uint32(0x00005000), uint16(numGlyphs))},
	}
	if len(f.Kern) > 0 {
		tables = append(tables, table{"kern", f.kern()})
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].tag < tables[j].tag })

	version := f.Version
	if version == 0 {
		version = 0x00010000
	}
	out := be(version, uint16(len(tables)), uint16(0), uint16(0), uint16(0))
	offset := len(out) + 16*len(tables)
	var body []byte
	corruptAt := -1
	for _, t := range tables {
		out = append(out, t.tag...)
		out = append(out, be(checksum(t.data), uint32(offset+len(body)), uint32(len(t.data)))...)
		if t.tag == f.Corrupt {
			corruptAt = offset + len(body)
		}
		body = append(body, t.data...)
		for len(body)%4 != 0 {
			body = append(body, 0)
		}
	}
	out = append(out, body...)
	if corruptAt >= 0 {
		out[corruptAt] ^= 0xFF
	}
	return out
}

func (f *Font) head(upem uint16) []byte {
	var xMin, yMin, xMax, yMax int16
	for _, g := range f.Glyphs {
		for _, c := range g.Contours {
			for _, p := range c {
				xMin, xMax = min(xMin, p.X), max(xMax, p.X)
				yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)
			}
		}
	}
	locFormat := int16(0)
	if f.LongLoca {
		locFormat = 1
	}
	return be(
		uint32(0x00010000), uint32(0x00010000), uint32(0), uint32(0x5F0F3CF5),
		uint16(0), upem,
		uint64(0), uint64(0),
		xMin, yMin, xMax, yMax,
		uint16(0), uint16(8), int16(2), locFormat, int16(0),
	)
}

func (f *Font) hhea() []byte {
	return be(
		uint32(0x00010000), f.Ascent, f.Descent, int16(0),
		uint16(0), int16(0), int16(0), int16(0),
		int16(1), int16(0), int16(0),
		int16(0), int16(0), int16(0), int16(0),
		int16(0), uint16(f.numHMetrics()),
	)
}

func (f *Font) numHMetrics() int {
	if f.HMetrics > 0 {
		return f.HMetrics
	}
	return len(f.Glyphs) + 1
}

func (f *Font) hmtx() []byte {
	advances := []uint16{0}
	for _, g := range f.Glyphs {
		advances = append(advances, g.Advance)
	}
	var out []byte
	for i, adv := range advances {
		if i < f.numHMetrics() {
			out = append(out, be(adv, int16(0))...)
		} else {
			out = append(out, be(int16(0))...)
		}
	}
	return out
}

func (f *Font) glyfLoca() (glyf, loca []byte) {
	offsets := []int{0}
	// .notdef is empty.
	offsets = append(offsets, 0)
	for _, g := range f.Glyphs {
		glyf = append(glyf, encodeGlyph(g)...)
		for len(glyf)%4 != 0 {
			glyf = append(glyf, 0)
		}
		offsets = append(offsets, len(glyf))
	}
	for _, off := range offsets {
		if f.LongLoca {
			loca = append(loca, be(uint32(off))...)
		} else {
			loca = append(loca, be(uint16(off/2))...)
		}
	}
	return glyf, loca
}

func encodeGlyph(g Glyph) []byte {
	if g.Compound {
		// One component: ARG_1_AND_2_ARE_WORDS, glyph 1, offset 0,0.
		return be(int16(-1), int16(0), int16(0), int16(0), int16(0),
			uint16(0x0001), uint16(1), int16(0), int16(0))
	}
	if len(g.Contours) == 0 {
		return nil
	}

	var xMin, yMin, xMax, yMax int16 = 32767, 32767, -32768, -32768
	var endPts []uint16
	var points []Point
	for _, c := range g.Contours {
		points = append(points, c...)
		endPts = append(endPts, uint16(len(points)-1))
		for _, p := range c {
			xMin, xMax = min(xMin, p.X), max(xMax, p.X)
			yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)
		}
	}

	out := be(int16(len(g.Contours)), xMin, yMin, xMax, yMax)
	for _, e := range endPts {
		out = append(out, be(e)...)
	}
	out = append(out, be(uint16(0))...) // no instructions

	flags := make([]byte, len(points))
	var xs, ys []byte
	var px, py int16
	for i, p := range points {
		var f byte
		if p.OnCurve {
			f |= 1
		}
		f |= encodeDelta(int(p.X)-int(px), 1<<1, 1<<4, &xs)
		f |= encodeDelta(int(p.Y)-int(py), 1<<2, 1<<5, &ys)
		flags[i] = f
		px, py = p.X, p.Y
	}

	for i := 0; i < len(flags); {
		run := 1
		for i+run < len(flags) && flags[i+run] == flags[i] && run < 256 {
			run++
		}
		if run > 1 {
			out = append(out, flags[i]|1<<3, byte(run-1))
		} else {
			out = append(out, flags[i])
		}
		i += run
	}
	out = append(out, xs...)
	out = append(out, ys...)
	return out
}

func encodeDelta(d int, short, same byte, dst *[]byte) byte {
	switch {
	case d == 0:
		return same
	case d > -256 && d < 256:
		if d > 0 {
			*dst = append(*dst, byte(d))
			return short | same
		}
		*dst = append(*dst, byte(-d))
		return short
	default:
		*dst = append(*dst, be(int16(d))...)
		return 0
	}
}

func (f *Font) segments() []Segment {
	if f.Segments != nil {
		segs := slices.Clone(f.Segments)
		sort.Slice(segs, func(i, j int) bool { return segs[i].End < segs[j].End })
		return segs
	}
	var segs []Segment
	for i, g := range f.Glyphs {
		segs = append(segs, Segment{Start: g.Char, End: g.Char, FirstID: uint16(i + 1)})
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].End < segs[j].End })
	return segs
}

func (f *Font) cmap() []byte {
	segs := append(f.segments(), Segment{Start: 0xFFFF, End: 0xFFFF, FirstID: 0})
	n := len(segs)

	var ends, starts, deltas, rangeOffsets []byte
	var glyphIDs []uint16
	for i, s := range segs {
		ends = append(ends, be(uint16(s.End))...)
		starts = append(starts, be(uint16(s.Start))...)
		if s.Indirect {
			deltas = append(deltas, be(uint16(0))...)
			rangeOffsets = append(rangeOffsets, be(uint16(2*(n-i)+2*len(glyphIDs)))...)
			for c := s.Start; c <= s.End; c++ {
				glyphIDs = append(glyphIDs, s.FirstID+uint16(c-s.Start))
			}
			continue
		}
		delta := uint16(1)
		if s.Start != 0xFFFF {
			delta = s.FirstID - uint16(s.Start)
		}
		deltas = append(deltas, be(delta)...)
		rangeOffsets = append(rangeOffsets, be(uint16(0))...)
	}

	format := f.CmapFormat
	if format == 0 {
		format = 4
	}
	sub := be(format, uint16(0), uint16(0), uint16(2*n), uint16(0), uint16(0), uint16(0))
	sub = append(sub, ends...)
	sub = append(sub, be(uint16(0))...)
	sub = append(sub, starts...)
	sub = append(sub, deltas...)
	sub = append(sub, rangeOffsets...)
	for _, id := range glyphIDs {
		sub = append(sub, be(id)...)
	}
	binary.BigEndian.PutUint16(sub[2:], uint16(len(sub)))

	platform, encoding := f.CmapPlatform, f.CmapEncoding
	if platform == 0 && encoding == 0 {
		platform, encoding = 3, 1
	}
	out := be(uint16(0), uint16(1), platform, encoding, uint32(12))
	return append(out, sub...)
}

func (f *Font) kern() []byte {
	ids := make(map[rune]uint16)
	for _, s := range f.segments() {
		for c := s.Start; c <= s.End; c++ {
			ids[c] = s.FirstID + uint16(c-s.Start)
		}
	}
	type pair struct {
		left, right uint16
		value       int16
	}
	var pairs []pair
	for _, k := range f.Kern {
		pairs = append(pairs, pair{ids[k.Left], ids[k.Right], k.Value})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].left != pairs[j].left {
			return pairs[i].left < pairs[j].left
		}
		return pairs[i].right < pairs[j].right
	})

	coverage := uint16(f.KernFormat)<<8 | 1
	out := be(uint16(0), uint16(1))
	out = append(out, be(uint16(0), uint16(14+6*len(pairs)), coverage,
		uint16(len(pairs)), uint16(0), uint16(0), uint16(0))...)
	for _, p := range pairs {
		out = append(out, be(p.left, p.right, p.value)...)
	}
	return out
}

func checksum(b []byte) uint32 {
	var sum uint32
	for i := 0; i < len(b); i += 4 {
		var w [4]byte
		copy(w[:], b[i:])
		sum += binary.BigEndian.Uint32(w[:])
	}
	return sum
}

// be encodes fixed-size values big-endian.
func be(values ...any) []byte {
	var out []byte
	for _, v := range values {
		out, _ = binary.Append(out, binary.BigEndian, v)
	}
	return out
}
