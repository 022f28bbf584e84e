package ole2

import "io"

// fileSectorSource reads whole sectors directly from the underlying file by
// SecID, implementing sectorSource for the long-chain allocation tables.
type fileSectorSource struct {
	file       io.ReaderAt
	sectorSize int
}

func (f *fileSectorSource) readSector(id SecID) ([]byte, error) {
	if id < 0 {
		return nil, ErrMalformedChain
	}
	buf := make([]byte, f.sectorSize)
	if _, err := f.file.ReadAt(buf, (int64(id)+1)*int64(f.sectorSize)); err != nil {
		return nil, err
	}
	return buf, nil
}

// seekerReaderAt adapts an io.ReadSeeker to io.ReaderAt. Every call
// repositions the underlying seeker, so it is only safe for the
// single-threaded, synchronous use this package makes of it (§5).
type seekerReaderAt struct {
	rs io.ReadSeeker
}

func (a *seekerReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if _, err := a.rs.Seek(off, io.SeekStart); err != nil {
		return 0, err
	}
	return io.ReadFull(a.rs, p)
}

// Reader is an opened compound document: its header, allocation tables and
// directory, ready to hand out Streams for named entries.
type Reader struct {
	header *Header
	sat    *allocationTable
	ssat   *allocationTable
	dir    *directory
	root   *Entry

	file       io.ReaderAt
	rootStream *Stream // the root entry's long stream, backing all short streams
}

// Open parses a compound document container from r: header, MSAT, SAT,
// SSAT and directory (§4.B-§4.D).
func Open(r io.ReadSeeker) (*Reader, error) {
	file := io.ReaderAt(nil)
	if ra, ok := r.(io.ReaderAt); ok {
		file = ra
	} else {
		file = &seekerReaderAt{rs: r}
	}

	hdrBuf := make([]byte, headerSize)
	if _, err := file.ReadAt(hdrBuf, 0); err != nil {
		return nil, err
	}
	h, err := parseHeader(hdrBuf)
	if err != nil {
		return nil, err
	}

	src := &fileSectorSource{file: file, sectorSize: h.SectorSize}

	msat, err := buildMSAT(h, src)
	if err != nil {
		return nil, err
	}
	sat, err := buildSAT(h, msat, src)
	if err != nil {
		return nil, err
	}
	ssat, err := buildSSAT(h, sat, src)
	if err != nil {
		return nil, err
	}

	dirRaw, err := readChain(sat, src, h.DirStreamSecID)
	if err != nil {
		return nil, err
	}
	dir := parseDirectory(dirRaw)

	root, err := dir.root()
	if err != nil {
		return nil, err
	}

	rootStream := newLongStream(file, sat, h.SectorSize, root.FirstSecID, root.Size)

	return &Reader{
		header:     h,
		sat:        sat,
		ssat:       ssat,
		dir:        dir,
		root:       root,
		file:       file,
		rootStream: rootStream,
	}, nil
}

// ListDir returns every directory entry in on-disk order.
func (r *Reader) ListDir() []Entry {
	return r.dir.entries
}

// HasDirectory reports whether name exists among the stream/storage/root
// entries (case-sensitive).
func (r *Reader) HasDirectory(name string) bool {
	return r.dir.has(name)
}

// Directory resolves a directory entry by case-sensitive name.
func (r *Reader) Directory(name string) (*Entry, error) {
	return r.dir.find(name)
}

// Stream renders a directory entry as a seekable byte stream, choosing the
// long (SAT) or short (SSAT) chain by the entry's declared size against the
// header's streamMinSize cutoff (§4.E).
func (r *Reader) Stream(e *Entry) *Stream {
	if e.Size >= int64(r.header.StreamMinSize) {
		return newLongStream(r.file, r.sat, r.header.SectorSize, e.FirstSecID, e.Size)
	}
	return newShortStream(r.rootStream, r.ssat, r.header.ShortSectorSize, e.FirstSecID, e.Size)
}
