package xls

import (
	"encoding/binary"
	"math"
	"testing"
)

func resultBytes(kindByte, valueByte byte, notDouble bool) []byte {
	b := make([]byte, 8)
	b[0] = kindByte
	b[2] = valueByte
	if notDouble {
		binary.LittleEndian.PutUint16(b[6:8], 0xFFFF)
	}
	return b
}

func TestDecodeFormulaResultDouble(t *testing.T) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(3.25))
	kind, dbl, _, _ := decodeFormulaResult(b)
	if kind != FormulaDouble || dbl != 3.25 {
		t.Fatalf("got (%v, %v), want (FormulaDouble, 3.25)", kind, dbl)
	}
}

func TestDecodeFormulaResultBool(t *testing.T) {
	kind, _, boolean, _ := decodeFormulaResult(resultBytes(1, 1, true))
	if kind != FormulaBool || !boolean {
		t.Fatalf("got (%v, %v), want (FormulaBool, true)", kind, boolean)
	}
	kind, _, boolean, _ = decodeFormulaResult(resultBytes(1, 0, true))
	if kind != FormulaBool || boolean {
		t.Fatalf("got (%v, %v), want (FormulaBool, false)", kind, boolean)
	}
}

func TestDecodeFormulaResultError(t *testing.T) {
	const errNA = 0x2A
	kind, _, _, errCode := decodeFormulaResult(resultBytes(2, errNA, true))
	if kind != FormulaError || errCode != errNA {
		t.Fatalf("got (%v, %#x), want (FormulaError, %#x)", kind, errCode, errNA)
	}
}

func TestDecodeFormulaResultPendingString(t *testing.T) {
	kind, _, _, _ := decodeFormulaResult(resultBytes(0, 0, true))
	if kind != FormulaString {
		t.Fatalf("got %v, want FormulaString", kind)
	}
	kind, _, _, _ = decodeFormulaResult(resultBytes(3, 0, true))
	if kind != FormulaPending {
		t.Fatalf("got %v, want FormulaPending", kind)
	}
}

func TestIsShrFmlaRecognizesSharedFormula(t *testing.T) {
	rec := &record{code: codeShrFmla, payload: []byte{0, 0, 0, 0}}
	if !isShrFmla(rec) {
		t.Fatal("expected isShrFmla to report true for a SHRFMLA record")
	}
}
