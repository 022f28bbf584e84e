package xls

import (
	"fmt"
	"io"
	"os"

	"github.com/hrabarskyi/goxls/ole2"
)

// Book is a parsed workbook: its sheets, shared strings already resolved,
// and its date mode. Open/OpenReader build this by driving Scan with
// Book itself as the Storage sink (component J); streaming callers who
// don't want the whole book in memory can call Scan directly with their
// own Storage implementation.
type Book struct {
	sheets     []*Sheet
	sheetIndex map[int]*Sheet
	sst        []string
	dateMode   DateMode
	codepage   uint16
}

// Open reads path as a compound-document .xls workbook. charset names a
// legacy single-byte code page ("windows-1252", "koi8-r", ...) used to
// decode narrow BIFF8 string runs; pass "" to decode by zero-extension.
func Open(path, charset string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return OpenReader(f, charset)
}

// OpenReader reads a compound-document .xls workbook from r.
func OpenReader(r io.ReadSeeker, charset string) (*Book, error) {
	b := &Book{dateMode: Dec31_1899, sheetIndex: make(map[int]*Sheet)}
	codepage, err := Scan(r, charset, b)
	if err != nil {
		return nil, err
	}
	b.codepage = codepage
	return b, nil
}

// Storage methods: Book is its own Scan sink, building the in-memory grid.

func (b *Book) OnSheet(index int, name string) {
	s := newSheet(name)
	b.sheetIndex[index] = s
	b.sheets = append(b.sheets, s)
}

func (b *Book) OnDateMode(mode uint16) { b.dateMode = DateMode(mode) }

func (b *Book) OnSharedString(total, index int, value string) {
	if cap(b.sst) == 0 {
		b.sst = make([]string, 0, total)
	}
	b.sst = append(b.sst, value)
	_ = index // strings arrive in index order; index is informational here
}

func (b *Book) OnCellSharedString(sheet int, row, col uint16, sstIndex int32) {
	if sstIndex < 0 || int(sstIndex) >= len(b.sst) {
		return
	}
	b.sheetIndex[sheet].set(row, col, Cell{kind: CellString, str: b.sst[sstIndex]})
}

func (b *Book) OnCellString(sheet int, row, col uint16, value string) {
	b.sheetIndex[sheet].set(row, col, Cell{kind: CellString, str: value})
}

func (b *Book) OnCellDouble(sheet int, row, col uint16, value float64) {
	b.sheetIndex[sheet].set(row, col, Cell{kind: CellDouble, num: value})
}

func (b *Book) OnCellFormula(sheet int, f Formula) {
	b.sheetIndex[sheet].set(f.Row, f.Col, Cell{kind: CellFormula, num: f.Double, str: f.Str, formula: &f})
}

// Close is a no-op; Open's underlying *os.File is closed before Open
// returns, and OpenReader never takes ownership of its reader.
func (b *Book) Close() error { return nil }

// SheetCount is the number of WorkSheet-type sheets discovered.
func (b *Book) SheetCount() int { return len(b.sheets) }

// Sheet returns the i'th sheet (zero-based, in workbook order).
func (b *Book) Sheet(i int) (*Sheet, error) {
	if i < 0 || i >= len(b.sheets) {
		return nil, ErrMalformedFormat
	}
	return b.sheets[i], nil
}

// DateMode reports which epoch the workbook's serial dates are counted
// from.
func (b *Book) DateMode() DateMode { return b.dateMode }

// Codepage returns the workbook's raw CODEPAGE record value, uninterpreted
// (§11 supplemented feature). It is 0 if the workbook carried no CODEPAGE
// record.
func (b *Book) Codepage() uint16 { return b.codepage }

// Scan opens r as a compound-document .xls workbook and drives sink
// through every sheet and cell it finds (component J). It returns the raw
// CODEPAGE record value; that detail isn't part of the Storage contract
// since every caller of Scan already receives Scan's own return value.
func Scan(r io.ReadSeeker, charsetName string, sink Storage) (codepage uint16, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrMalformedFormat, rec)
		}
	}()

	cdf, err := ole2.Open(r)
	if err != nil {
		return 0, err
	}
	entry, err := workbookEntry(cdf)
	if err != nil {
		return 0, err
	}
	stream := cdf.Stream(entry)
	cs := newCharset(charsetName)

	sheetsMeta, sst, codepage, err := scanGlobals(stream, cs, sink)
	if err != nil {
		return 0, err
	}

	sheetIdx := 0
	for _, meta := range sheetsMeta {
		if meta.kind != SheetKindWorksheet {
			continue
		}
		sink.OnSheet(sheetIdx, meta.name)
		if err := stream.Seek(int64(meta.bofPos), ole2.FromBeginning); err != nil {
			return 0, err
		}
		if err := scanSheet(stream, sink, cs, sheetIdx, sst); err != nil {
			return 0, err
		}
		sheetIdx++
	}
	return codepage, nil
}

func workbookEntry(cdf *ole2.Reader) (*ole2.Entry, error) {
	for _, name := range []string{"Workbook", "Book"} {
		if cdf.HasDirectory(name) {
			return cdf.Directory(name)
		}
	}
	return nil, ErrMissingWorkbookStream
}

// scanGlobals reads the workbook-globals substream up to its EOF record:
// BOF (requiring BIFF8), FILEPASS (rejecting encryption), BOUNDSHEET,
// SST, CODEPAGE and DATEMODE.
func scanGlobals(stream *ole2.Stream, cs *charset, sink Storage) ([]boundSheet, *sharedStrings, uint16, error) {
	var sheetsMeta []boundSheet
	var sst *sharedStrings
	var codepage uint16

	first := true
	for {
		rec, err := readRecord(stream)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, 0, err
		}

		if first {
			if rec.code != codeBOF {
				return nil, nil, 0, ErrMalformedFormat
			}
			if err := parseBOF(rec); err != nil {
				return nil, nil, 0, err
			}
			first = false
			continue
		}

		switch rec.code {
		case codeFilepass:
			return nil, nil, 0, ErrEncryptedNotSupported
		case codeBoundSheet:
			sheetsMeta = append(sheetsMeta, parseBoundSheet(rec, cs))
		case codeSST:
			sst = parseSST(rec, cs)
			for i, v := range sst.values {
				sink.OnSharedString(len(sst.values), i, v)
			}
		case codeCodepage:
			codepage = newCursor(rec.payload).u16()
		case codeDatemode:
			mode := newCursor(rec.payload).u16()
			sink.OnDateMode(mode)
		case codeEOF:
			return sheetsMeta, sst, codepage, nil
		}
	}
	return sheetsMeta, sst, codepage, nil
}

// scanSheet reads one WorkSheet substream up to its EOF record, decoding
// every cell record it recognizes and handing it to sink. Shared-string
// cells carry only their SST index (OnCellSharedString); resolving it to
// text is the sink's job, since the sink already saw every string via
// OnSharedString while the globals were scanned. An index outside the
// shared string table aborts the scan with ErrMalformedFormat.
func scanSheet(stream *ole2.Stream, sink Storage, cs *charset, sheetIdx int, sst *sharedStrings) error {
	first := true
	var pendingFormula *Formula
	skippedShrFmla := false

	for {
		rec, err := readRecord(stream)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if first {
			if rec.code != codeBOF {
				return ErrMalformedFormat
			}
			if err := parseBOF(rec); err != nil {
				return err
			}
			first = false
			continue
		}

		if pendingFormula != nil {
			if isShrFmla(rec) && !skippedShrFmla {
				skippedShrFmla = true
				// Tolerated and discarded: a shared formula's own token
				// stream is never evaluated (§1, §4.I resolved Open
				// Question).
				continue
			}
			if rec.code != codeString {
				// A string-valued FORMULA must be followed by its STRING
				// record (with at most one SHRFMLA in between); anything
				// else means the cached result and the cell stream have
				// come apart.
				return ErrMalformedFormat
			}
		}

		switch rec.code {
		case codeLabelSST:
			ref, idx := decodeLabelSST(rec)
			if sst == nil {
				return ErrMalformedFormat
			}
			if _, err := sst.at(idx); err != nil {
				return err
			}
			sink.OnCellSharedString(sheetIdx, ref.row, ref.col, idx)

		case codeLabel:
			ref, str := decodeLabel(rec, cs)
			sink.OnCellString(sheetIdx, ref.row, ref.col, str)

		case codeNumber:
			ref, v := decodeNumber(rec)
			sink.OnCellDouble(sheetIdx, ref.row, ref.col, v)

		case codeRK, codeRK2:
			ref, v := decodeRK(rec)
			sink.OnCellDouble(sheetIdx, ref.row, ref.col, v)

		case codeMulRK:
			row, firstCol, _, values := decodeMulRK(rec)
			for i, v := range values {
				sink.OnCellDouble(sheetIdx, row, firstCol+uint16(i), v)
			}

		case codeFormula:
			f := parseFormula(rec)
			if f.Kind == FormulaString {
				pendingFormula = &f
				skippedShrFmla = false
				continue
			}
			sink.OnCellFormula(sheetIdx, f)

		case codeString:
			if pendingFormula == nil {
				return ErrMalformedFormat
			}
			pendingFormula.Str = parseFormulaString(rec, cs)
			sink.OnCellFormula(sheetIdx, *pendingFormula)
			pendingFormula = nil

		case codeEOF:
			return nil
		}
	}
	return nil
}
