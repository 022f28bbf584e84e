package xls

import "golang.org/x/text/encoding/charmap"

// charset decodes a single byte of a BIFF8 "narrow" (non-wide) string run
// into a UTF-16 code unit. A nil *charset (the zero value for an unknown or
// empty charset name) falls back to zero-extension, exactly the decode
// §4.H specifies by default: bytes 0x00-0x7F are identical under every
// code page this package knows about, so zero-extension and "decode under
// an unrecognized/absent locale" are the same operation.
//
// This is the one caller-facing hook spec.md §9 leaves open: "single-byte
// code-page mapping under the caller's current locale" is in scope, but the
// core never inspects the file's own CODEPAGE record to choose a table
// (Book.Codepage exposes that record's raw value for callers who want it,
// uninterpreted).
type charset struct {
	table [256]uint16
}

// newCharset resolves name to a code page table, or nil if name is empty
// or unrecognized (meaning: decode narrow runs by zero-extension).
func newCharset(name string) *charset {
	cm := lookupCharmap(name)
	if cm == nil {
		return nil
	}

	cs := &charset{}
	dec := cm.NewDecoder()
	for i := 0; i < 256; i++ {
		out, err := dec.Bytes([]byte{byte(i)})
		cs.table[i] = uint16(i)
		if err != nil || len(out) == 0 {
			continue
		}
		if r := []rune(string(out)); len(r) > 0 && r[0] <= 0xFFFF {
			cs.table[i] = uint16(r[0])
		}
	}
	return cs
}

// decodeByte widens one narrow-run byte to its UTF-16 code unit.
func (cs *charset) decodeByte(b byte) uint16 {
	if cs == nil {
		return uint16(b)
	}
	return cs.table[b]
}

func lookupCharmap(name string) *charmap.Charmap {
	switch name {
	case "windows-1250":
		return charmap.Windows1250
	case "windows-1251":
		return charmap.Windows1251
	case "windows-1252":
		return charmap.Windows1252
	case "windows-1253":
		return charmap.Windows1253
	case "windows-1254":
		return charmap.Windows1254
	case "windows-1255":
		return charmap.Windows1255
	case "windows-1256":
		return charmap.Windows1256
	case "windows-1257":
		return charmap.Windows1257
	case "windows-1258":
		return charmap.Windows1258
	case "iso-8859-1":
		return charmap.ISO8859_1
	case "iso-8859-2":
		return charmap.ISO8859_2
	case "iso-8859-15":
		return charmap.ISO8859_15
	case "koi8-r":
		return charmap.KOI8R
	case "koi8-u":
		return charmap.KOI8U
	case "macintosh":
		return charmap.Macintosh
	case "cp437":
		return charmap.CodePage437
	case "cp850":
		return charmap.CodePage850
	case "cp866":
		return charmap.CodePage866
	default:
		return nil
	}
}
