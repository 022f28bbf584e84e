package ole2

import (
	"bytes"
	"encoding/binary"
)

// SecID is a signed 32-bit sector identifier. Most values are the index of
// a sector in the file; the sentinels below carry special meaning.
type SecID int32

// Sentinel SecID values used throughout the allocation tables.
const (
	SecIDFree    SecID = -1 // unallocated sector
	SecIDEndOfChain SecID = -2 // last sector in a chain
	SecIDSAT     SecID = -3 // marks a sector used by the SAT itself
	SecIDMSAT    SecID = -4 // marks a sector used by the MSAT itself
)

const headerSize = 512

// magic is the 8-byte compound document identifier.
var magic = [8]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

const byteOrderLE = 0xFFFE

// header is the on-disk layout of the 512-byte compound document header,
// minus the trailing 109-entry MSAT slab (read separately by parseHeader
// because binary.Read cannot target an unexported array length cleanly
// alongside the rest of the struct on all platforms).
type header struct {
	Magic           [8]byte
	Clsid           [16]byte
	MinorVersion    uint16
	MajorVersion    uint16
	ByteOrder       uint16
	SectorSizePower uint16
	ShortSecSizePow uint16
	_               [6]byte
	_               uint32 // number of directory sectors, BIFF writers leave 0
	SectorsInSAT    uint32
	DirStreamSecID  int32
	_               uint32 // transaction signature, unused
	StreamMinSize   uint32
	SSATFirstSecID  int32
	SectorsInSSAT   uint32
	MSATFirstSecID  int32
	SectorsInMSAT   uint32
}

// Header is the parsed compound document header (component B).
type Header struct {
	SectorSize      int
	ShortSectorSize int
	SectorsInSAT    int
	DirStreamSecID  SecID
	StreamMinSize   int
	SSATFirstSecID  SecID
	SectorsInSSAT   int
	MSATFirstSecID  SecID
	SectorsInMSAT   int

	// MSATHead holds the first 109 MSAT entries embedded in the header
	// itself; any remaining entries are chained through sectors starting
	// at MSATFirstSecID (see buildMSAT).
	MSATHead [109]SecID
}

func parseHeader(buf []byte) (*Header, error) {
	if len(buf) < headerSize {
		return nil, ErrBadMagic
	}

	r := bytes.NewReader(buf[:headerSize-109*4])
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}

	if h.Magic != magic {
		return nil, ErrBadMagic
	}
	if h.ByteOrder != byteOrderLE {
		return nil, ErrUnsupportedByteOrder
	}

	out := &Header{
		SectorSize:      1 << h.SectorSizePower,
		ShortSectorSize: 1 << h.ShortSecSizePow,
		SectorsInSAT:    int(h.SectorsInSAT),
		DirStreamSecID:  SecID(h.DirStreamSecID),
		StreamMinSize:   int(h.StreamMinSize),
		SSATFirstSecID:  SecID(h.SSATFirstSecID),
		SectorsInSSAT:   int(h.SectorsInSSAT),
		MSATFirstSecID:  SecID(h.MSATFirstSecID),
		SectorsInMSAT:   int(h.SectorsInMSAT),
	}

	msatHead := buf[headerSize-109*4 : headerSize]
	for i := 0; i < 109; i++ {
		out.MSATHead[i] = SecID(int32(binary.LittleEndian.Uint32(msatHead[i*4:])))
	}

	return out, nil
}
