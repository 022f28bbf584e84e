package ole2

import (
	"encoding/binary"
	"unicode/utf16"
)

// EntryType is a compound document directory entry's storage kind.
type EntryType byte

// Directory entry types (§4.D).
const (
	EntryEmpty   EntryType = 0
	EntryStorage EntryType = 1
	EntryStream  EntryType = 2
	EntryRoot    EntryType = 5
)

const dirEntrySize = 128

// Entry is a parsed directory entry: name, type, and the first SecID plus
// size of the stream it describes.
type Entry struct {
	Name       string
	Type       EntryType
	FirstSecID SecID
	Size       int64
}

// directory is the flat array of entries the directory stream decodes to.
// The on-disk layout is a red-black tree for name-lookup acceleration, but
// a linear scan over the flat array is adequate for this core (§9).
type directory struct {
	entries []Entry
}

func parseDirectory(raw []byte) *directory {
	d := &directory{}
	for off := 0; off+dirEntrySize <= len(raw); off += dirEntrySize {
		e := raw[off : off+dirEntrySize]

		nameLenUnits := binary.LittleEndian.Uint16(e[64:66])
		typ := EntryType(e[66])

		var name string
		if nameLenUnits >= 2 {
			chars := int(nameLenUnits)/2 - 1
			units := make([]uint16, chars)
			for i := 0; i < chars; i++ {
				units[i] = binary.LittleEndian.Uint16(e[i*2:])
			}
			name = string(utf16.Decode(units))
		}

		firstSecID := readSecID(e, 116)
		size := int64(binary.LittleEndian.Uint32(e[120:124]))

		d.entries = append(d.entries, Entry{
			Name:       name,
			Type:       typ,
			FirstSecID: firstSecID,
			Size:       size,
		})
	}
	return d
}

// root returns the directory's root entry (index 0), which carries the
// short-stream container's first SecID and total length.
func (d *directory) root() (*Entry, error) {
	if len(d.entries) == 0 {
		return nil, ErrNotFound
	}
	return &d.entries[0], nil
}

// has reports whether a case-sensitive entry named name exists among the
// stream/storage/root entries.
func (d *directory) has(name string) bool {
	_, err := d.find(name)
	return err == nil
}

// find looks up a stream/storage/root entry by case-sensitive name.
func (d *directory) find(name string) (*Entry, error) {
	for i := range d.entries {
		e := &d.entries[i]
		switch e.Type {
		case EntryStream, EntryStorage, EntryRoot:
			if e.Name == name {
				return e, nil
			}
		}
	}
	return nil, ErrNotFound
}
