package xls

// parseBOF decodes a BOF record's payload and reports whether the version
// word is BIFF8 (§4.G). Only the version word is consulted; substream type
// (worksheet/workbook globals/chart/...) is not needed by the driver, which
// instead tracks sheet type from BoundSheet.
func parseBOF(rec *record) error {
	c := newCursor(rec.payload)
	version := c.u16()
	if version != biffVersion8 {
		return ErrUnsupportedBiff
	}
	return nil
}

// SheetKind is a BoundSheet's substream type.
type SheetKind int16

// Sheet kinds (§4.G). Only WorkSheet is scanned for cells; the others are
// discovered but never parsed (§1 out of scope).
const (
	SheetKindWorksheet SheetKind = 0x0000
	SheetKindMacro     SheetKind = 0x0100
	SheetKindChart     SheetKind = 0x0200
	SheetKindVBA       SheetKind = 0x0600
)

// boundSheet is a BoundSheet record: a sheet's position in the workbook
// stream, its type, and its name.
type boundSheet struct {
	bofPos int32
	kind   SheetKind
	name   string
}

// parseBoundSheet decodes a BoundSheet record (§4.G): pos:i32, type:i16,
// then a BIFF-string with a 1-byte length prefix.
func parseBoundSheet(rec *record, cs *charset) boundSheet {
	c := newCursor(rec.payload)
	pos := c.i32()
	typ := c.i16()
	name := decodeBiffString(c, rec.borders, 1, cs)
	return boundSheet{
		bofPos: pos,
		kind:   SheetKind(typ & ^0xFF),
		name:   name,
	}
}
