// Package cfbftest builds minimal, valid OLE2/CFBF compound-document
// byte images for tests, without needing real .xls fixture files on disk.
// It is used by both ole2's and xls's test suites.
package cfbftest

import (
	"encoding/binary"
	"unicode/utf16"
)

const sectorSize = 512

// u32 reinterprets a signed sector/SecID marker as its unsigned wire form.
func u32(v int32) uint32 { return uint32(v) }

var magic = [8]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Build returns a compound document with a single named stream holding
// data, laid out as: header, one SAT sector, one directory sector, then
// data's sectors in a long chain. StreamMinSize is set to 0 so every
// stream is read through the long (SAT) chain; short streams get their
// own coverage in ole2's reader tests via ShortStreamFixture.
func Build(streamName string, data []byte) []byte {
	numData := (len(data) + sectorSize - 1) / sectorSize

	sat := make([]int32, sectorSize/4)
	for i := range sat {
		sat[i] = -1
	}
	sat[0] = -3 // SAT sector marks itself
	sat[1] = -2 // directory is a single sector
	for i := 0; i < numData; i++ {
		idx := 2 + i
		if i == numData-1 {
			sat[idx] = -2
		} else {
			sat[idx] = int32(idx + 1)
		}
	}

	firstDataSecID := int32(-2)
	if numData > 0 {
		firstDataSecID = 2
	}

	dirSector := make([]byte, sectorSize)
	putDirEntry(dirSector[0:128], "Root Entry", 5, -2, 0)
	putDirEntry(dirSector[128:256], streamName, 2, firstDataSecID, int64(len(data)))

	header := buildHeader(0)

	out := make([]byte, 0, len(header)+sectorSize*(2+numData))
	out = append(out, header...)
	out = append(out, encodeSAT(sat)...)
	out = append(out, dirSector...)

	for i := 0; i < numData; i++ {
		start := i * sectorSize
		end := start + sectorSize
		if end > len(data) {
			end = len(data)
		}
		sec := make([]byte, sectorSize)
		copy(sec, data[start:end])
		out = append(out, sec...)
	}
	return out
}

func encodeSAT(sat []int32) []byte {
	buf := make([]byte, sectorSize)
	for i, v := range sat {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	return buf
}

func putDirEntry(e []byte, name string, typ byte, firstSecID int32, size int64) {
	units := utf16.Encode([]rune(name))
	for i, u := range units {
		binary.LittleEndian.PutUint16(e[i*2:], u)
	}
	binary.LittleEndian.PutUint16(e[64:66], uint16((len(units)+1)*2))
	e[66] = typ
	binary.LittleEndian.PutUint32(e[116:120], uint32(firstSecID))
	binary.LittleEndian.PutUint32(e[120:124], uint32(size))
}

// buildHeader returns the 512-byte compound document header: sector size
// 512, one SAT sector (embedded directly in the header's MSAT head), no
// chained MSAT sectors, streamMinSize forcing every stream to resolve as a
// long stream.
func buildHeader(streamMinSize uint32) []byte {
	return buildHeaderFull(streamMinSize, 0, -2, 0)
}

// buildHeaderFull is buildHeader generalized with the SSAT fields a
// short-stream fixture needs to set.
func buildHeaderFull(streamMinSize uint32, satSecID int32, ssatFirstSecID int32, sectorsInSSAT uint32) []byte {
	h := make([]byte, sectorSize)
	copy(h[0:8], magic[:])
	binary.LittleEndian.PutUint16(h[28:30], 0xFFFE) // byte order
	binary.LittleEndian.PutUint16(h[30:32], 9)      // sector size = 1<<9 = 512
	binary.LittleEndian.PutUint16(h[32:34], 6)      // short sector size = 1<<6 = 64
	binary.LittleEndian.PutUint32(h[44:48], 1)      // sectors in SAT
	binary.LittleEndian.PutUint32(h[48:52], 1)      // directory stream SecID
	binary.LittleEndian.PutUint32(h[56:60], streamMinSize)
	binary.LittleEndian.PutUint32(h[60:64], uint32(ssatFirstSecID))
	binary.LittleEndian.PutUint32(h[64:68], sectorsInSSAT)
	binary.LittleEndian.PutUint32(h[68:72], u32(-2)) // MSAT first SecID
	binary.LittleEndian.PutUint32(h[72:76], 0)       // sectors in MSAT

	binary.LittleEndian.PutUint32(h[76:80], uint32(satSecID)) // MSATHead[0] = SAT sector's own SecID
	for i := 1; i < 109; i++ {
		binary.LittleEndian.PutUint32(h[76+i*4:], u32(-1))
	}
	return h
}

// ShortStreamFixture builds a compound document with one stream small
// enough to be read through the short (SSAT) chain instead of the SAT:
// its data spans two 64-byte short-sectors inside the root entry's own
// long stream. It returns the image and the payload the stream should
// read back to.
func ShortStreamFixture() (image []byte, payload []byte) {
	payload = make([]byte, 100)
	for i := range payload {
		payload[i] = byte(i)
	}

	// Sector layout: 0=SAT, 1=directory, 2=SSAT, 3=root stream data.
	sat := []int32{-3, -2, -2, -2}
	satBuf := make([]byte, sectorSize)
	for i, v := range sat {
		binary.LittleEndian.PutUint32(satBuf[i*4:], uint32(v))
	}
	for i := len(sat); i < sectorSize/4; i++ {
		binary.LittleEndian.PutUint32(satBuf[i*4:], u32(-1))
	}

	// Short-sector chain: short-sector 0 (bytes 0-63 of the root stream)
	// continues into short-sector 1 (bytes 64-127), which ends the chain.
	ssatBuf := make([]byte, sectorSize)
	binary.LittleEndian.PutUint32(ssatBuf[0:4], u32(1))
	binary.LittleEndian.PutUint32(ssatBuf[4:8], u32(-2))
	for i := 2; i < sectorSize/4; i++ {
		binary.LittleEndian.PutUint32(ssatBuf[i*4:], u32(-1))
	}

	rootData := make([]byte, sectorSize)
	copy(rootData, payload) // short-sectors 0 and 1 hold the first 128 bytes

	dirSector := make([]byte, sectorSize)
	putDirEntry(dirSector[0:128], "Root Entry", 5, 3, int64(sectorSize))
	putDirEntry(dirSector[128:256], "ShortStream", 2, 0, int64(len(payload)))

	header := buildHeaderFull(4096, 0, 2, 1)

	image = append(image, header...)
	image = append(image, satBuf...)
	image = append(image, dirSector...)
	image = append(image, ssatBuf...)
	image = append(image, rootData...)
	return image, payload
}
