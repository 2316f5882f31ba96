package exercises

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout renders exercise dates, e.g. "Mon Jan 01 2024".
const DateLayout = "Mon Jan 02 2006"

var inputLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the
// calendar day it falls on, at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return startOfDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// FormatDate renders t with DateLayout in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Today is the calendar day of now, at midnight UTC. It is the date an
// exercise gets when none is supplied.
func Today(now time.Time) time.Time {
	return startOfDay(now)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
