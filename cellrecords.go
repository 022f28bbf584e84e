package xls

import "math"

// Component I: decoders for the cell records a worksheet substream carries.
// Each decoder reads just the row/column/value fields a record needs;
// formatting (the XF index every one of these carries) is read and
// discarded per the package's scope.

// cellRef is the row/column address common to every cell record.
type cellRef struct {
	row, col uint16
}

// decodeLabelSST decodes a LABELSST record: row, col, xf, then a 4-byte
// index into the shared string table.
func decodeLabelSST(rec *record) (cellRef, int32) {
	c := newCursor(rec.payload)
	row := c.u16()
	col := c.u16()
	c.skip(2) // XF
	idx := c.i32()
	return cellRef{row, col}, idx
}

// decodeLabel decodes a LABEL record: row, col, xf, then an inline BIFF8
// string with a 2-byte length prefix. LABEL predates the shared string
// table and stores its text directly in the cell.
func decodeLabel(rec *record, cs *charset) (cellRef, string) {
	c := newCursor(rec.payload)
	row := c.u16()
	col := c.u16()
	c.skip(2) // XF
	return cellRef{row, col}, decodeBiffString(c, rec.borders, 2, cs)
}

// decodeNumber decodes a NUMBER record: row, col, xf, then a plain 8-byte
// IEEE-754 double.
func decodeNumber(rec *record) (cellRef, float64) {
	c := newCursor(rec.payload)
	row := c.u16()
	col := c.u16()
	c.skip(2) // XF
	return cellRef{row, col}, c.f64()
}

// decodeRKValue unpacks RK's 30-bit packed number (§4.I): bit 0 selects
// /100 scaling, bit 1 selects an integer payload (the top 30 bits as a
// signed int) versus a truncated double (the top 30 bits placed in a
// double's high word, low 34 mantissa bits zeroed).
func decodeRKValue(raw uint32) float64 {
	divideBy100 := raw&0x1 != 0
	isInt := raw&0x2 != 0

	var v float64
	if isInt {
		v = float64(int32(raw) >> 2)
	} else {
		bits := uint64(raw&^0x3) << 32
		v = math.Float64frombits(bits)
	}
	if divideBy100 {
		v /= 100
	}
	return v
}

// decodeRK decodes an RK record: row, col, xf, then one packed RK value.
func decodeRK(rec *record) (cellRef, float64) {
	c := newCursor(rec.payload)
	row := c.u16()
	col := c.u16()
	c.skip(2) // XF
	return cellRef{row, col}, decodeRKValue(c.u32())
}

// decodeMulRK decodes a MULRK record: row, then (xf, rk) pairs for columns
// firstCol..lastCol inclusive, with lastCol trailing the record.
func decodeMulRK(rec *record) (row, firstCol, lastCol uint16, values []float64) {
	c := newCursor(rec.payload)
	row = c.u16()
	firstCol = c.u16()

	// row(2) + firstCol(2) already consumed, lastCol(2) trails the record;
	// everything in between is (xf:2, rk:4) pairs.
	count := (len(rec.payload) - 6) / 6
	values = make([]float64, 0, count)
	for i := 0; i < count; i++ {
		c.skip(2) // XF
		values = append(values, decodeRKValue(c.u32()))
	}
	lastCol = c.u16()
	return row, firstCol, lastCol, values
}
