package utils

import (
	"strings"
	"time"
)

const (
	layoutDate    = "2006-01-02"
	layoutDisplay = "Jan 2, 2006, 3:04 PM"

	// Placeholder is shown wherever a value cannot be rendered.
	Placeholder = "N/A"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	layoutDate,
}

// ParseDate reads the YYYY-MM-DD portion of an ISO date or datetime as a
// calendar date at midnight in loc. Any clock or offset after the date is
// ignored, so "2025-01-10T23:30:00Z" is Jan 10 in every zone.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(layoutDate) {
		s = s[:len(layoutDate)]
	}
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(layoutDate, s, loc)
}

// ParseTimestamp accepts the ISO shapes the backend emits.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDisplay renders an ISO timestamp as "Jan 2, 2006, 3:04 PM" in loc, or
// Placeholder when it does not parse.
func FormatDisplay(s string, loc *time.Location) string {
	t, ok := ParseTimestamp(s, loc)
	if !ok {
		return Placeholder
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(layoutDisplay)
}

// FormatDate formats time to YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}
