package utils

import "time"

// The API accepts times as "DD-MM-YYYY HH:MM" and emits them as
// "YYYY-MM-DDTHH:MM:SS". The asymmetry is part of the wire contract.
const (
	TimeInputLayout  = "02-01-2006 15:04"
	TimeOutputLayout = "2006-01-02T15:04:05"
)

// ParseWireTime parses a request time field in the input layout.
func ParseWireTime(value string) (time.Time, error) {
	return time.Parse(TimeInputLayout, value)
}

// FormatWireTime renders a time for a response body.
func FormatWireTime(t time.Time) string {
	return t.Format(TimeOutputLayout)
}
