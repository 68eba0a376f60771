package timeutil

import (
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30)
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback: create fixed zone if Asia/Kolkata not available
		IST = time.FixedZone("IST", 5*60*60+30*60) // UTC+5:30
	}
}

// Now returns the current time in IST
func Now() time.Time {
	return time.Now().In(IST)
}

// ToIST converts any time to IST
func ToIST(t time.Time) time.Time {
	return t.In(IST)
}

// StartOfDay returns the start of day (00:00:00) in IST for the given time
func StartOfDay(t time.Time) time.Time {
	ist := t.In(IST)
	return time.Date(ist.Year(), ist.Month(), ist.Day(), 0, 0, 0, 0, IST)
}

// Today returns the current date in IST normalized to midnight. Renewal
// day-counting uses this as its reference point.
func Today() time.Time {
	return StartOfDay(Now())
}

// Common layouts
const (
	DateLayout    = "2006-01-02"
	DisplayLayout = "02 Jan 2006, 03:04 PM"
)
