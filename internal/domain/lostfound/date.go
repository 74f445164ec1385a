package lostfound

import (
	"strings"
	"time"
)

const DateLayout = time.DateOnly

// ParseDate accepts a plain date or an RFC 3339 timestamp and keeps the
// calendar date. An empty string yields nil.
func ParseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if d, err := time.Parse(DateLayout, raw); err == nil {
		return &d, nil
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, ErrInvalidDate
	}
	d := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	return &d, nil
}

// FormatDate renders d as YYYY-MM-DD, or nil.
func FormatDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(DateLayout)
	return &s
}
