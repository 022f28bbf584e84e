package xls

import "errors"

// Errors surfaced by the BIFF8 workbook layer. Container-level errors
// (ErrBadMagic, ErrUnsupportedByteOrder, ErrMalformedChain, ErrNotFound,
// ErrOutOfRange) come from the ole2 package and are returned unwrapped, so
// callers can errors.Is against either set.
var (
	// ErrUnsupportedBiff is returned when a BOF record's version word is
	// not BIFF8. Older and newer BIFF dialects are not implemented.
	ErrUnsupportedBiff = errors.New("xls: unsupported BIFF version, only BIFF8 is supported")

	// ErrEncryptedNotSupported is returned when a FILEPASS record is seen;
	// decrypting protected workbooks is out of scope.
	ErrEncryptedNotSupported = errors.New("xls: workbook is encrypted, decryption is not supported")

	// ErrMalformedFormat is returned for any structural violation in the
	// BIFF record stream: a record whose declared length runs past the end
	// of the stream, an SST or SAT index out of range, or an unexpected
	// record where a specific one was required (e.g. STRING after a
	// string-valued FORMULA).
	ErrMalformedFormat = errors.New("xls: malformed BIFF stream")

	// ErrMissingWorkbookStream is returned when the compound document has
	// neither a "Workbook" nor a "Book" stream.
	ErrMissingWorkbookStream = errors.New("xls: no Workbook or Book stream found")
)
