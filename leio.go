package xls

import (
	"encoding/binary"
	"math"
)

// Component A: fixed-width little-endian readers shared by every BIFF
// record decoder, plus a cursor that walks a record's payload
// sequentially, which is how the cell-record decoders in cellrecords.go
// and sst.go consume their fields.

func leUint16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func leUint32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func leInt16(b []byte) int16   { return int16(leUint16(b)) }
func leInt32(b []byte) int32   { return int32(leUint32(b)) }

// leFloat64 bit-copies 8 little-endian bytes into an IEEE-754 double. This
// replaces the source's union-based type punning (§9) with a plain
// math.Float64frombits bit-cast.
func leFloat64(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// cursor walks a []byte payload left to right, tracking how far it has
// read. Used by the fixed-field decoders (row/col/xf/...) ahead of any
// variable-length string tail.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor { return &cursor{buf: buf} }

func (c *cursor) remaining() int { return len(c.buf) - c.pos }

func (c *cursor) u16() uint16 {
	v := leUint16(c.buf[c.pos:])
	c.pos += 2
	return v
}

func (c *cursor) i16() int16 {
	v := leInt16(c.buf[c.pos:])
	c.pos += 2
	return v
}

func (c *cursor) u32() uint32 {
	v := leUint32(c.buf[c.pos:])
	c.pos += 4
	return v
}

func (c *cursor) i32() int32 {
	v := leInt32(c.buf[c.pos:])
	c.pos += 4
	return v
}

func (c *cursor) f64() float64 {
	v := leFloat64(c.buf[c.pos:])
	c.pos += 8
	return v
}

func (c *cursor) u8() byte {
	v := c.buf[c.pos]
	c.pos++
	return v
}

func (c *cursor) bytes(n int) []byte {
	v := c.buf[c.pos : c.pos+n]
	c.pos += n
	return v
}

func (c *cursor) skip(n int) { c.pos += n }
