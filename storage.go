package xls

// Storage is the sink the workbook driver streams decoded records into
// (component J's IStorage). Implement it to consume cells as they're
// parsed instead of waiting for the whole book to load into memory; Open/
// OpenReader build the in-memory grid model through *Book (book.go), which
// implements this same interface.
type Storage interface {
	// OnSheet is called once per WorkSheet-type BoundSheet, in the order
	// sheets appear in the workbook stream, before any cell callback for
	// that sheet.
	OnSheet(index int, name string)

	// OnDateMode is called at most once per workbook, from the DATEMODE
	// global record.
	OnDateMode(mode uint16)

	// OnSharedString is called once per SST entry, in index order, while
	// the globals are scanned.
	OnSharedString(total, index int, value string)

	// OnCellSharedString is called for a LABELSST cell.
	OnCellSharedString(sheet int, row, col uint16, sstIndex int32)

	// OnCellString is called for a LABEL cell (an inline, non-shared
	// string).
	OnCellString(sheet int, row, col uint16, value string)

	// OnCellDouble is called for NUMBER, RK and MULRK cells.
	OnCellDouble(sheet int, row, col uint16, value float64)

	// OnCellFormula is called for a FORMULA cell, after its cached result
	// (and, for string results, the following STRING record) is decoded.
	OnCellFormula(sheet int, f Formula)
}
