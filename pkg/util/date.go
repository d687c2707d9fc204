package util

import (
	"strings"
	"time"
)

// DateLayout is the ISO 8601 calendar date accepted everywhere a day is entered.
const DateLayout = "2006-01-02"

// ParseDate parses YYYY-MM-DD as midnight UTC. Returns (t, true) if it worked.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DayBounds returns Unix seconds covering [from, to) at day granularity.
// to is exclusive, so a one-day range has to > from.
func DayBounds(from, to time.Time) (int64, int64) {
	from = from.UTC().Truncate(24 * time.Hour)
	to = to.UTC().Truncate(24 * time.Hour)
	if !to.After(from) {
		to = from.Add(24 * time.Hour)
	}
	return from.Unix(), to.Unix()
}
