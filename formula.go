package xls

// FormulaKind identifies which variant of a FORMULA record's cached result
// is present (§3, §4.I). Excel never stores the formula's recomputed value;
// it stores whatever the result was at last save, tagged by this kind.
type FormulaKind int

const (
	FormulaDouble FormulaKind = iota
	FormulaString
	FormulaBool
	FormulaError
	// FormulaPending marks a non-double cached result whose type byte is
	// none of string, boolean or error; no cached value is decoded for it.
	FormulaPending
)

// Formula is a decoded FORMULA cell: its position and its cached result.
// The token stream describing the formula itself is not read and is never
// evaluated (§1, out of scope).
type Formula struct {
	Row, Col uint16
	Kind     FormulaKind
	Double   float64
	Bool     bool
	Error    byte
	Str      string
}

// decodeFormulaResult interprets the 8-byte cached-result field of a
// FORMULA record (§4.I). When bytes 6-7 are 0xFFFF, byte 0 selects which
// non-double variant is present; otherwise the 8 bytes are a little-endian
// IEEE-754 double.
func decodeFormulaResult(b []byte) (kind FormulaKind, dbl float64, boolean bool, errCode byte) {
	if leUint16(b[6:8]) != 0xFFFF {
		return FormulaDouble, leFloat64(b), false, 0
	}
	switch b[0] {
	case 0:
		return FormulaString, 0, false, 0
	case 1:
		return FormulaBool, 0, b[2] != 0, 0
	case 2:
		return FormulaError, 0, false, b[2]
	default:
		return FormulaPending, 0, false, 0
	}
}

// parseFormula decodes a FORMULA record. When the cached result is a
// string, the actual text lives in the STRING record that immediately
// follows (possibly after a single tolerated SHRFMLA record, §4.I's
// resolved Open Question); the caller fills in the returned Formula's Str
// once that record is read.
func parseFormula(rec *record) Formula {
	c := newCursor(rec.payload)
	row := c.u16()
	col := c.u16()
	c.skip(2) // XF index, discarded (§1 Non-goals: cell formatting is out of scope)
	result := c.bytes(8)
	c.skip(2) // option flags, not needed to report the cached result

	kind, dbl, boolean, errCode := decodeFormulaResult(result)
	return Formula{
		Row: row, Col: col,
		Kind:   kind,
		Double: dbl,
		Bool:   boolean,
		Error:  errCode,
	}
}

// parseFormulaString decodes a STRING record: the actual cached text for a
// FORMULA whose result kind is FormulaString. STRING always uses a 2-byte
// character count and is never itself continued across a boundary by
// another STRING, only by CONTINUE.
func parseFormulaString(rec *record, cs *charset) string {
	c := newCursor(rec.payload)
	return decodeBiffString(c, rec.borders, 2, cs)
}

// isShrFmla reports whether rec is a SHRFMLA record, tolerated and
// discarded between a string-valued FORMULA and its STRING record.
func isShrFmla(rec *record) bool {
	return rec.code == codeShrFmla
}
