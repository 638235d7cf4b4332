package emissions

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// dateLayouts are tried after the ISO forms civil understands.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/06",
	"2006/1/2",
	"2-Jan-2006",
	"2-Jan-06",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2006",
	"January 2006",
	"Jan-06",
	"2006-01",
	"2006",
}

// ParseYear extracts the calendar year from a test-date string. The second
// result is false for empty or unparseable input; ParseYear never fails.
func ParseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "NaN" {
		return 0, false
	}
	if d, err := civil.ParseDate(s); err == nil {
		return d.Year, true
	}
	if dt, err := civil.ParseDateTime(s); err == nil {
		return dt.Date.Year, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), true
		}
	}
	return 0, false
}
