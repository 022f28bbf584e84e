// Package ole2 reads the OLE2/CFBF compound document container that wraps
// a legacy Excel ".xls" workbook: header, allocation tables, directory, and
// the virtualization of long and short sector chains as a seekable stream.
package ole2
