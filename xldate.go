package xls

import (
	"math"
	"time"
)

// DateMode is the workbook's DATEMODE record (§11 supplemented feature):
// which epoch Excel serial numbers are counted from.
type DateMode uint16

const (
	// Dec31_1899 is the default epoch (serial 1 == 1900-01-01), carrying
	// Excel's intentional Lotus 1-2-3 leap-year bug: serial 60 is the
	// nonexistent 1900-02-29.
	Dec31_1899 DateMode = 0
	// Jan1_1904 is the Macintosh epoch.
	Jan1_1904 DateMode = 1
)

var (
	epoch1900       = time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)
	epoch1900Minus1 = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	epoch1904       = time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
)

// ToTime converts an Excel serial date/time number to a time.Time, per the
// workbook's date mode. Grounded on xlrd's XldateAsDatetime: for the 1900
// epoch, serials on or after the fictitious leap day (60) are counted from
// one day earlier than serials before it, which is how Excel's bug is kept
// self-consistent without ever producing a Feb-29-1900.
func (mode DateMode) ToTime(serial float64) time.Time {
	var epoch time.Time
	switch {
	case mode == Jan1_1904:
		epoch = epoch1904
	case serial < 60:
		epoch = epoch1900
	default:
		epoch = epoch1900Minus1
	}

	days := int(serial)
	fraction := serial - float64(days)

	millis := int(math.Round(fraction * 86400000.0))
	secs := millis / 1000
	millis %= 1000

	return epoch.AddDate(0, 0, days).Add(time.Duration(secs)*time.Second + time.Duration(millis)*time.Millisecond)
}
