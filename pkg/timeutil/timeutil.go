// Package timeutil converts between the calendar-date strings used by the
// NASA/JPL close-approach data and time.Time values.
//
// The close-approach data set renders approach times like "1900-Jan-01 00:00"
// (month as a three-letter English abbreviation, always UTC). Both writers
// use FormatCD as the canonical datetime string, so parsing and formatting
// must stay exact inverses of each other.
package timeutil

import (
	"fmt"
	"time"
)

// Layouts understood by this package.
const (
	// CDLayout matches calendar-date strings such as "1900-Jan-01 00:00".
	CDLayout = "2006-Jan-02 15:04"

	// DateLayout matches plain dates such as "2020-01-01", used by CLI filters.
	DateLayout = "2006-01-02"
)

// ParseCD parses a calendar-date string from the close-approach data set
// into a UTC time.
func ParseCD(s string) (time.Time, error) {
	t, err := time.ParseInLocation(CDLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse calendar date %q: %w", s, err)
	}
	return t, nil
}

// FormatCD renders t in the canonical calendar-date form. It is the inverse
// of ParseCD for any time ParseCD can produce.
func FormatCD(t time.Time) string {
	return t.UTC().Format(CDLayout)
}

// ParseDate parses a plain YYYY-MM-DD date into a UTC time at midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
