package utils

import (
	"time"
)

// Iso8601 formats t in UTC as RFC3339
func Iso8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Age renders how long ago t was, rounded to the second
func Age(now, t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return now.Sub(t).Round(time.Second).String()
}
