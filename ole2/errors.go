package ole2

import "errors"

// Errors returned while parsing a compound document container.
var (
	// ErrBadMagic is returned when the first 8 bytes of the stream do not
	// match the compound file identifier.
	ErrBadMagic = errors.New("ole2: not a compound document (bad magic)")

	// ErrUnsupportedByteOrder is returned when the header's byte-order mark
	// is not the little-endian value. The format fixes little-endian for
	// every numeric field, so a file claiming otherwise cannot be parsed.
	ErrUnsupportedByteOrder = errors.New("ole2: unsupported byte order")

	// ErrMalformedChain is returned when a sector chain walk runs past the
	// end of its allocation table, or fails to terminate within the table's
	// bounds.
	ErrMalformedChain = errors.New("ole2: malformed sector chain")

	// ErrNotFound is returned by Directory lookups for a name with no entry.
	ErrNotFound = errors.New("ole2: directory entry not found")

	// ErrOutOfRange is returned when a seek targets a position outside the
	// stream's declared length.
	ErrOutOfRange = errors.New("ole2: seek out of range")
)
