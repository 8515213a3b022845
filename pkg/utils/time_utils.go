package utils

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02",
}

// ParseDate accepts the date formats clients actually send: RFC 3339
// timestamps and bare yyyy-mm-dd dates.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ParseDateOrNow is for fields where a missing or unparseable date defaults
// to the current time (stop and activity dates).
func ParseDateOrNow(s string) time.Time {
	if strings.TrimSpace(s) == "" {
		return time.Now()
	}
	t, err := ParseDate(s)
	if err != nil {
		return time.Now()
	}
	return t
}
