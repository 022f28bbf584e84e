package xls

import (
	"encoding/binary"
	"math"
)

// Minimal BIFF8 record builders shared by this package's tests. They cover
// only the fields each decoder actually reads.

func biffRecord(code uint16, payload []byte) []byte {
	buf := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint16(buf[0:2], code)
	binary.LittleEndian.PutUint16(buf[2:4], uint16(len(payload)))
	copy(buf[4:], payload)
	return buf
}

// biffStr encodes s as a narrow (non-wide) BIFF8 string with a
// lenPrefixBytes-byte character count: [count][flags=0][ascii bytes].
func biffStr(s string, lenPrefixBytes int) []byte {
	var head []byte
	if lenPrefixBytes == 1 {
		head = []byte{byte(len(s))}
	} else {
		head = make([]byte, 2)
		binary.LittleEndian.PutUint16(head, uint16(len(s)))
	}
	out := append(head, 0) // flags: narrow, no rich text, no far-east data
	out = append(out, []byte(s)...)
	return out
}

func bofRecord() []byte {
	payload := make([]byte, 2)
	binary.LittleEndian.PutUint16(payload, biffVersion8)
	return biffRecord(codeBOF, payload)
}

func eofRecord() []byte { return biffRecord(codeEOF, nil) }

func boundSheetRecord(pos int32, name string) []byte {
	payload := make([]byte, 6)
	binary.LittleEndian.PutUint32(payload[0:4], uint32(pos))
	binary.LittleEndian.PutUint16(payload[4:6], 0) // worksheet
	payload = append(payload, biffStr(name, 1)...)
	return biffRecord(codeBoundSheet, payload)
}

func sstRecord(strs ...string) []byte {
	payload := make([]byte, 8)
	binary.LittleEndian.PutUint32(payload[0:4], uint32(len(strs)))
	binary.LittleEndian.PutUint32(payload[4:8], uint32(len(strs)))
	for _, s := range strs {
		payload = append(payload, biffStr(s, 2)...)
	}
	return biffRecord(codeSST, payload)
}

func dateModeRecord(mode uint16) []byte {
	payload := make([]byte, 2)
	binary.LittleEndian.PutUint16(payload, mode)
	return biffRecord(codeDatemode, payload)
}

func labelSSTRecord(row, col uint16, sstIndex int32) []byte {
	payload := make([]byte, 10)
	binary.LittleEndian.PutUint16(payload[0:2], row)
	binary.LittleEndian.PutUint16(payload[2:4], col)
	binary.LittleEndian.PutUint32(payload[6:10], uint32(sstIndex))
	return biffRecord(codeLabelSST, payload)
}

func numberRecord(row, col uint16, v float64) []byte {
	payload := make([]byte, 14)
	binary.LittleEndian.PutUint16(payload[0:2], row)
	binary.LittleEndian.PutUint16(payload[2:4], col)
	// payload[4:6] is the XF index, left zero and discarded by decodeNumber.
	binary.LittleEndian.PutUint64(payload[6:14], math.Float64bits(v))
	return biffRecord(codeNumber, payload)
}

func rkRecord(row, col uint16, raw uint32) []byte {
	payload := make([]byte, 10)
	binary.LittleEndian.PutUint16(payload[0:2], row)
	binary.LittleEndian.PutUint16(payload[2:4], col)
	binary.LittleEndian.PutUint32(payload[6:10], raw)
	return biffRecord(codeRK, payload)
}

func formulaDoubleRecord(row, col uint16, v float64) []byte {
	payload := make([]byte, 16)
	binary.LittleEndian.PutUint16(payload[0:2], row)
	binary.LittleEndian.PutUint16(payload[2:4], col)
	binary.LittleEndian.PutUint64(payload[6:14], math.Float64bits(v))
	return biffRecord(codeFormula, payload)
}

func formulaNonDoubleRecord(row, col uint16, kindByte, valueByte byte) []byte {
	payload := make([]byte, 16)
	binary.LittleEndian.PutUint16(payload[0:2], row)
	binary.LittleEndian.PutUint16(payload[2:4], col)
	payload[6] = kindByte
	payload[8] = valueByte
	binary.LittleEndian.PutUint16(payload[12:14], 0xFFFF)
	return biffRecord(codeFormula, payload)
}

func stringRecord(s string) []byte {
	return biffRecord(codeString, biffStr(s, 2))
}
