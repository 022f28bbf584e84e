package ole2

import (
	"bytes"
	"io"
	"testing"

	"github.com/hrabarskyi/goxls/internal/cfbftest"
)

func TestOpenLongStreamRoundTrip(t *testing.T) {
	want := bytes.Repeat([]byte("0123456789abcdef"), 100) // 1600 bytes, spans 4 sectors
	image := cfbftest.Build("Workbook", want)

	r, err := Open(bytes.NewReader(image))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if !r.HasDirectory("Workbook") {
		t.Fatal("expected a Workbook entry")
	}
	entry, err := r.Directory("Workbook")
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}
	if entry.Size != int64(len(want)) {
		t.Fatalf("entry size = %d, want %d", entry.Size, len(want))
	}

	s := r.Stream(entry)
	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("stream content mismatch: got %d bytes, want %d", len(got), len(want))
	}
}

func TestStreamSeek(t *testing.T) {
	want := bytes.Repeat([]byte{0xAA}, 10)
	want[5] = 0xBB
	image := cfbftest.Build("Workbook", want)

	r, err := Open(bytes.NewReader(image))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	entry, err := r.Directory("Workbook")
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}
	s := r.Stream(entry)

	if err := s.Seek(5, FromBeginning); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	var b [1]byte
	if _, err := s.Read(b[:]); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if b[0] != 0xBB {
		t.Fatalf("byte at offset 5 = %#x, want 0xbb", b[0])
	}

	if err := s.Seek(0, FromEnd); err != nil {
		t.Fatalf("Seek FromEnd: %v", err)
	}
	if !s.Eof() {
		t.Fatal("expected Eof after seeking to the end")
	}

	if err := s.Seek(1, FromEnd); err == nil {
		t.Fatal("expected an error seeking past the end")
	}
}

func TestMissingDirectoryEntry(t *testing.T) {
	image := cfbftest.Build("Workbook", []byte("x"))
	r, err := Open(bytes.NewReader(image))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := r.Directory("DoesNotExist"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBadMagic(t *testing.T) {
	image := cfbftest.Build("Workbook", []byte("x"))
	image[0] = 0x00
	if _, err := Open(bytes.NewReader(image)); err != ErrBadMagic {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}

func TestShortStreamRoundTrip(t *testing.T) {
	image, want := cfbftest.ShortStreamFixture()

	r, err := Open(bytes.NewReader(image))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	entry, err := r.Directory("ShortStream")
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}

	s := r.Stream(entry)
	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("short stream content mismatch: got %v, want %v", got, want)
	}
}
