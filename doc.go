// Package xls reads legacy Microsoft Excel 97-2003 (.xls) workbooks: the
// BIFF8 record stream nested inside an OLE2/CFBF compound document
// (package ole2 handles the container; this package handles BIFF8 itself).
//
// Open or OpenReader load a whole workbook into memory. Scan drives a
// caller-supplied Storage sink through the same records without building
// that in-memory model, for callers who'd rather stream cells as they're
// decoded.
package xls
