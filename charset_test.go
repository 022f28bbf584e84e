package xls

import "testing"

func TestCharsetZeroExtensionByDefault(t *testing.T) {
	cs := newCharset("")
	if cs != nil {
		t.Fatalf("newCharset(\"\") = %v, want nil", cs)
	}
	if got := cs.decodeByte(0x41); got != 0x41 {
		t.Fatalf("decodeByte('A') = %#x, want 0x41", got)
	}
}

func TestCharsetWindows1252HighByte(t *testing.T) {
	cs := newCharset("windows-1252")
	if cs == nil {
		t.Fatal("newCharset(\"windows-1252\") = nil, want a table")
	}
	// 0x80 in Windows-1252 is the Euro sign (U+20AC), not U+0080.
	if got := cs.decodeByte(0x80); got != 0x20AC {
		t.Fatalf("decodeByte(0x80) = %#x, want 0x20ac", got)
	}
	// ASCII range is identical under every code page.
	if got := cs.decodeByte('A'); got != 'A' {
		t.Fatalf("decodeByte('A') = %#x, want 'A'", got)
	}
}

func TestCharsetUnknownNameFallsBackToNil(t *testing.T) {
	if cs := newCharset("not-a-real-codepage"); cs != nil {
		t.Fatalf("newCharset(unknown) = %v, want nil", cs)
	}
}
