package xls

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestDecodeRKValueIntegerAndScaled(t *testing.T) {
	cases := []struct {
		name string
		raw  uint32
		want float64
	}{
		{"plain integer", (uint32(42) << 2) | 0x2, 42},
		{"integer, divide by 100", (uint32(4200) << 2) | 0x3, 42},
		{"double, no scale", rkDoubleBits(1.5), 1.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := decodeRKValue(c.raw)
			if got != c.want {
				t.Fatalf("decodeRKValue(%#x) = %v, want %v", c.raw, got, c.want)
			}
		})
	}
}

// rkDoubleBits packs v into an RK record's truncated-double encoding
// (integer flag clear): the top 30 bits of the IEEE-754 double become the
// packed value, with the low 2 bits reserved for the scale/type flags.
func rkDoubleBits(v float64) uint32 {
	return uint32(math.Float64bits(v) >> 32)
}

func buildMulRKPayload(row, firstCol uint16, rks []uint32) []byte {
	payload := make([]byte, 4)
	binary.LittleEndian.PutUint16(payload[0:2], row)
	binary.LittleEndian.PutUint16(payload[2:4], firstCol)
	for _, rk := range rks {
		pair := make([]byte, 6)
		binary.LittleEndian.PutUint32(pair[2:6], rk)
		payload = append(payload, pair...)
	}
	lastCol := make([]byte, 2)
	binary.LittleEndian.PutUint16(lastCol, firstCol+uint16(len(rks))-1)
	payload = append(payload, lastCol...)
	return payload
}

func TestDecodeMulRK(t *testing.T) {
	rec := &record{payload: buildMulRKPayload(3, 5, []uint32{
		(uint32(1) << 2) | 0x2,
		(uint32(2) << 2) | 0x2,
		(uint32(3) << 2) | 0x2,
	})}
	row, firstCol, lastCol, values := decodeMulRK(rec)
	if row != 3 || firstCol != 5 || lastCol != 7 {
		t.Fatalf("row=%d firstCol=%d lastCol=%d, want 3,5,7", row, firstCol, lastCol)
	}
	want := []float64{1, 2, 3}
	for i, w := range want {
		if values[i] != w {
			t.Fatalf("values[%d] = %v, want %v", i, values[i], w)
		}
	}
}
