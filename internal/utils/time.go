package utils

import (
	"fmt"
	"strings"
	"time"
)

// Trip timestamps are UTC ISO-8601 with no fractional-seconds component.
const (
	layoutTimestamp = "2006-01-02T15:04:05Z"
	layoutDate      = "2006-01-02"
)

// NowUTC returns current time in UTC truncated to whole seconds.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// FormatTimestamp renders an instant as YYYY-MM-DDTHH:mm:ssZ.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(layoutTimestamp)
}

// ParseTimestamp parses YYYY-MM-DDTHH:mm:ssZ. time.Parse alone would accept
// a fractional-second field the layout omits, so the input must re-format to
// itself exactly; sub-second input is rejected rather than truncated.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	ts, err := time.Parse(layoutTimestamp, s)
	if err != nil {
		return time.Time{}, err
	}
	if FormatTimestamp(ts) != s {
		return time.Time{}, fmt.Errorf("timestamp %q must not carry fractional seconds", s)
	}
	return ts, nil
}

// ParseDate parses YYYY-MM-DD as a UTC day boundary.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.UTC)
}

// FormatDate formats time to YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(layoutDate)
}
