package xls

import (
	"testing"
	"time"
)

func TestDateModeToTime1900Epoch(t *testing.T) {
	got := Dec31_1899.ToTime(1)
	want := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ToTime(1) = %v, want %v", got, want)
	}
}

func TestDateModeToTimeAfterLeapBug(t *testing.T) {
	// Serial 61 is 1900-03-01: Excel's fictitious 1900-02-29 (serial 60)
	// sits between serial 59 (1900-02-28) and serial 61, so the real date
	// is one day earlier than a naive count from 1899-12-31 gives.
	got := Dec31_1899.ToTime(61)
	want := time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ToTime(61) = %v, want %v", got, want)
	}
}

func TestDateModeToTime1904Epoch(t *testing.T) {
	got := Jan1_1904.ToTime(0)
	want := time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ToTime(0) = %v, want %v", got, want)
	}
}
