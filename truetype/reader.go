package truetype

import (
	"encoding/binary"
	"fmt"
)

// reader decodes big-endian values from one table. The first out-of-range
// access records a FormatError; later reads return zero values, so callers
// check err once after a group of reads.
type reader struct {
	table string
	data  []byte
	pos   int
	err   error
}

func newReader(table string, data []byte) *reader {
	return &reader{table: table, data: data}
}

func (r *reader) fail(need int) {
	if r.err == nil {
		r.err = &FormatError{
			Table:  r.table,
			Reason: fmt.Sprintf("read of %d bytes at offset %d past end of table (%d bytes)", need, r.pos, len(r.data)),
		}
	}
}

// next returns the next n bytes and advances, or nil on failure.
func (r *reader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.pos+n > len(r.data) {
		r.fail(n)
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *reader) seek(pos int) {
	if r.err != nil {
		return
	}
	if pos < 0 || pos > len(r.data) {
		r.pos = pos
		r.fail(0)
		return
	}
	r.pos = pos
}

func (r *reader) skip(n int) { r.seek(r.pos + n) }

func (r *reader) u8() uint8 {
	b := r.next(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) u16() uint16 {
	b := r.next(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (r *reader) i16() int16 { return int16(r.u16()) }

func (r *reader) u32() uint32 {
	b := r.next(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (r *reader) tag() string {
	b := r.next(4)
	if b == nil {
		return ""
	}
	return string(b)
}

func (r *reader) u16s(n int) []uint16 {
	b := r.next(2 * n)
	if b == nil {
		return nil
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	return out
}
