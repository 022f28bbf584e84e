package xls

import (
	"encoding/binary"
	"io"

	"github.com/hrabarskyi/goxls/ole2"
)

// record is one BIFF record, its CONTINUE fragments already stitched into
// a single payload. borders lists the payload offsets at which the
// original record/CONTINUE boundaries lay, since string decoding headers
// restart at each such boundary (§4.F, §3 "Record").
type record struct {
	code    uint16
	payload []byte
	borders []int32
}

// readRecord reads one record from s, folding in any immediately
// following CONTINUE records. The first non-CONTINUE record peeked after
// the stitched payload is rewound so the caller's dispatch loop sees it.
func readRecord(s *ole2.Stream) (*record, error) {
	code, length, err := readRecordHeader(s)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, ErrMalformedFormat
	}

	payload := make([]byte, length)
	if err := readExactly(s, payload); err != nil {
		return nil, ErrMalformedFormat
	}

	rec := &record{code: code, payload: payload}

	for {
		nextCode, nextLength, err := readRecordHeader(s)
		if err == io.EOF {
			return rec, nil
		}
		if err != nil {
			return nil, ErrMalformedFormat
		}
		if nextCode != codeContinue {
			if err := s.Seek(-4, ole2.FromCurrent); err != nil {
				return nil, ErrMalformedFormat
			}
			return rec, nil
		}

		frag := make([]byte, nextLength)
		if err := readExactly(s, frag); err != nil {
			return nil, ErrMalformedFormat
		}
		rec.borders = append(rec.borders, int32(len(rec.payload)))
		rec.payload = append(rec.payload, frag...)
	}
}

func readRecordHeader(s *ole2.Stream) (code, length uint16, err error) {
	var hdr [4]byte
	n, err := io.ReadFull(s, hdr[:])
	if err != nil {
		if n == 0 {
			return 0, 0, io.EOF
		}
		return 0, 0, err
	}
	return binary.LittleEndian.Uint16(hdr[0:2]), binary.LittleEndian.Uint16(hdr[2:4]), nil
}

func readExactly(s *ole2.Stream, buf []byte) error {
	_, err := io.ReadFull(s, buf)
	return err
}
