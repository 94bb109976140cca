package truetype

import (
	"encoding/binary"
	"fmt"
)

// sfnt versions accepted in the offset table.
const (
	versionTrueType = 0x00010000
	versionApple    = 0x74727565 // "true"
)

// requiredTables must be present for Parse to succeed. kern is optional.
var requiredTables = []string{"head", "maxp", "cmap", "hhea", "hmtx", "loca", "glyf"}

type tableRecord struct {
	tag      string
	checksum uint32
	offset   uint32
	length   uint32
}

// readDirectory decodes the offset table and table records and verifies
// every checksum except head's, whose stored value includes the whole-file
// adjustment.
func (p *parser) readDirectory() error {
	r := newReader("", p.data)
	version := r.u32()
	numTables := int(r.u16())
	r.skip(6) // searchRange, entrySelector, rangeShift
	if r.err != nil {
		return r.err
	}
	if version != versionTrueType && version != versionApple {
		return &FormatError{Reason: fmt.Sprintf("invalid sfnt version %#08x", version)}
	}

	p.tables = make(map[string]tableRecord, numTables)
	for range numTables {
		rec := tableRecord{
			tag:      r.tag(),
			checksum: r.u32(),
			offset:   r.u32(),
			length:   r.u32(),
		}
		if r.err != nil {
			return r.err
		}
		if uint64(rec.offset)+uint64(rec.length) > uint64(len(p.data)) {
			return &FormatError{Table: rec.tag, Reason: "table extends past end of file"}
		}
		if rec.tag != "head" {
			sum := checksum(p.data[rec.offset : rec.offset+rec.length])
			if sum != rec.checksum {
				return &FormatError{
					Table:  rec.tag,
					Reason: fmt.Sprintf("checksum mismatch: computed %#08x, stored %#08x", sum, rec.checksum),
				}
			}
		}
		p.tables[rec.tag] = rec
		slogger().Debug("truetype: table", "tag", rec.tag, "offset", rec.offset, "length", rec.length)
	}

	for _, tag := range requiredTables {
		if _, ok := p.tables[tag]; !ok {
			return &FormatError{Table: tag, Reason: "missing required table"}
		}
	}
	return nil
}

// checksum returns the wrapping sum of b read as big-endian uint32 words,
// with the final partial word zero padded.
func checksum(b []byte) uint32 {
	var sum uint32
	for len(b) >= 4 {
		sum += binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	if len(b) > 0 {
		var tail [4]byte
		copy(tail[:], b)
		sum += binary.BigEndian.Uint32(tail[:])
	}
	return sum
}
