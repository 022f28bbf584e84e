package xls

import "unicode/utf16"

// decodeBiffString reads a length-prefixed BIFF8 string from c: a
// lenPrefixBytes-byte character count, then the flags/wide/rich-text/
// far-east header and character payload described in §4.H. borders are the
// record's CONTINUE boundaries; a boundary reached mid-character-run means
// the next byte is a fresh flags prefix, not a new length.
func decodeBiffString(c *cursor, borders []int32, lenPrefixBytes int, cs *charset) string {
	var charCount int
	if lenPrefixBytes == 1 {
		charCount = int(c.u8())
	} else {
		charCount = int(c.u16())
	}
	return decodeBiffStringBody(c, borders, charCount, cs)
}

func decodeBiffStringBody(c *cursor, borders []int32, charCount int, cs *charset) string {
	flags := c.u8()
	wide := flags&0x1 != 0

	richTextNum := 0
	if flags&0x8 != 0 {
		richTextNum = int(c.u16())
	}
	farEastSize := 0
	if flags&0x4 != 0 {
		farEastSize = int(c.u32())
	}

	units := make([]uint16, 0, charCount)
	remaining := charCount
	for remaining > 0 {
		charSize := 1
		if wide {
			charSize = 2
		}

		nextBoundary := len(c.buf)
		for _, b := range borders {
			if int(b) > c.pos {
				nextBoundary = int(b)
				break
			}
		}

		availChars := (nextBoundary - c.pos) / charSize
		if availChars > remaining {
			availChars = remaining
		}
		for i := 0; i < availChars; i++ {
			if wide {
				units = append(units, c.u16())
			} else {
				units = append(units, cs.decodeByte(c.u8()))
			}
		}
		remaining -= availChars

		if remaining > 0 {
			// At a CONTINUE boundary: the very next byte restarts the
			// flags prefix, not a new length (§4.H segment boundary rule).
			// Rich-text run data and far-east data never straddle a
			// boundary mid-record, so they aren't re-read here.
			flags = c.u8()
			wide = flags&0x1 != 0
		}
	}

	if richTextNum > 0 {
		c.skip(richTextNum * 4)
	}
	if farEastSize > 0 {
		c.skip(farEastSize)
	}

	return string(utf16.Decode(units))
}

// sharedStrings is the reconstructed Shared String Table (§4.H, component
// H): the deduplicated string pool referenced by LABELSST cells.
type sharedStrings struct {
	values []string
}

func (sst *sharedStrings) at(i int32) (string, error) {
	if i < 0 || int(i) >= len(sst.values) {
		return "", ErrMalformedFormat
	}
	return sst.values[i], nil
}

// parseSST decodes the SST record (§4.H): total/unique counts, then
// `unique` back-to-back BIFF8 strings.
func parseSST(rec *record, cs *charset) *sharedStrings {
	c := newCursor(rec.payload)
	_ = c.i32() // total string count across the workbook; not needed once the pool is built
	unique := c.i32()

	sst := &sharedStrings{values: make([]string, 0, unique)}
	for i := int32(0); i < unique; i++ {
		sst.values = append(sst.values, decodeBiffString(c, rec.borders, 2, cs))
	}
	return sst
}
