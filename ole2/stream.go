package ole2

import "io"

// SeekOrigin selects the reference point for Stream.Seek, mirroring the
// three origins spec.md §4.E names.
type SeekOrigin int

// Seek origins.
const (
	FromBeginning SeekOrigin = iota
	FromCurrent
	FromEnd
)

// Stream presents a directory entry as a random-access byte stream,
// virtualizing either its long (SAT-addressed) or short (SSAT-addressed,
// living inside the root entry's own long stream) sector chain (§4.E).
type Stream struct {
	unit     int              // sectorSize for a long stream, shortSectorSize for a short one
	table    *allocationTable // SAT for long, SSAT for short
	head     SecID
	size     int64

	// Long streams read sectors directly from the file. Short streams read
	// them from inside shortContainer, itself a long Stream over the root
	// entry's chain.
	file           io.ReaderAt
	shortContainer *Stream

	pos int64
}

func newLongStream(file io.ReaderAt, sat *allocationTable, sectorSize int, head SecID, size int64) *Stream {
	return &Stream{unit: sectorSize, table: sat, head: head, size: size, file: file}
}

func newShortStream(container *Stream, ssat *allocationTable, shortSectorSize int, head SecID, size int64) *Stream {
	return &Stream{unit: shortSectorSize, table: ssat, head: head, size: size, shortContainer: container}
}

// Len returns the stream's declared length.
func (s *Stream) Len() int64 { return s.size }

// Pos returns the current logical read offset.
func (s *Stream) Pos() int64 { return s.pos }

// Eof reports whether the logical position has reached the stream's end.
func (s *Stream) Eof() bool { return s.pos >= s.size }

// Seek moves the logical read position. Implemented by computing the
// absolute target and validating it against the declared stream length;
// the actual sector containing that position is located lazily, by chain
// walk, on the next Read (§4.E: "O(offset/sectorSize) chain walk").
func (s *Stream) Seek(offset int64, whence SeekOrigin) error {
	var abs int64
	switch whence {
	case FromBeginning:
		abs = offset
	case FromCurrent:
		abs = s.pos + offset
	case FromEnd:
		abs = s.size + offset
	}
	if abs < 0 || abs > s.size {
		return ErrOutOfRange
	}
	s.pos = abs
	return nil
}

// Read fills p with up to len(p) bytes starting at the current position,
// transparently advancing across sector boundaries, and returns the number
// of bytes copied.
func (s *Stream) Read(p []byte) (int, error) {
	if s.pos >= s.size {
		return 0, io.EOF
	}
	remaining := s.size - s.pos
	want := int64(len(p))
	if want > remaining {
		want = remaining
	}

	read := 0
	for int64(read) < want {
		sectorIdx := int(s.pos / int64(s.unit))
		intra := int(s.pos % int64(s.unit))

		id, err := s.secIDAt(sectorIdx)
		if err != nil {
			return read, err
		}
		buf, err := s.sectorBytes(id)
		if err != nil {
			return read, err
		}

		n := copy(p[read:want], buf[intra:])
		if n == 0 {
			return read, ErrMalformedChain
		}
		read += n
		s.pos += int64(n)
	}
	return read, nil
}

// ReadFull reads exactly len(p) bytes at absolute offset off, leaving the
// stream's current position at off+len(p). Because it always seeks first,
// a caller sharing the stream does not depend on where an earlier read
// left the position. It is how short-stream reads source bytes from their
// shortContainer.
func (s *Stream) ReadFull(off int64, p []byte) error {
	if err := s.Seek(off, FromBeginning); err != nil {
		return err
	}
	for read := 0; read < len(p); {
		n, err := s.Read(p[read:])
		if n == 0 && err != nil {
			return err
		}
		read += n
	}
	return nil
}

// secIDAt walks the chain from head, nth times, returning the SecID of the
// nth sector (0-based).
func (s *Stream) secIDAt(nth int) (SecID, error) {
	cur := s.head
	for i := 0; i < nth; i++ {
		if cur == SecIDEndOfChain {
			return 0, ErrMalformedChain
		}
		next, err := s.table.next(cur)
		if err != nil {
			return 0, err
		}
		cur = next
	}
	if cur < 0 {
		return 0, ErrMalformedChain
	}
	return cur, nil
}

func (s *Stream) sectorBytes(id SecID) ([]byte, error) {
	if s.file != nil {
		buf := make([]byte, s.unit)
		if _, err := s.file.ReadAt(buf, (int64(id)+1)*int64(s.unit)); err != nil {
			return nil, err
		}
		return buf, nil
	}

	buf := make([]byte, s.unit)
	if err := s.shortContainer.ReadFull(int64(id)*int64(s.unit), buf); err != nil {
		return nil, err
	}
	return buf, nil
}
