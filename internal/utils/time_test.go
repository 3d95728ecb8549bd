package utils

import (
	"regexp"
	"testing"
	"time"
)

var tsPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

func TestFormatTimestampShape(t *testing.T) {
	cases := []time.Time{
		time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2026, 3, 1, 8, 0, 0, 123456789, time.UTC),            // fractional seconds dropped
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600)), // converted to UTC
	}
	for _, in := range cases {
		got := FormatTimestamp(in)
		if !tsPattern.MatchString(got) {
			t.Fatalf("FormatTimestamp(%v) = %q, does not match pattern", in, got)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	cases := []time.Time{
		time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 8, 0, 0, 999999999, time.UTC),
		time.Now().UTC(),
	}
	for _, in := range cases {
		parsed, err := ParseTimestamp(FormatTimestamp(in))
		if err != nil {
			t.Fatalf("round trip of %v failed: %v", in, err)
		}
		if !parsed.Equal(in.Truncate(time.Second)) {
			t.Fatalf("round trip of %v: got %v, want %v", in, parsed, in.Truncate(time.Second))
		}
	}
}

func TestParseTimestampRejectsFractionalSeconds(t *testing.T) {
	if _, err := ParseTimestamp("2026-03-01T08:00:00.123Z"); err == nil {
		t.Fatal("expected error for fractional seconds")
	}
	if _, err := ParseTimestamp("2026-03-01T08:00:00.000Z"); err == nil {
		t.Fatal("expected error even when the fraction is zero")
	}
	if _, err := ParseTimestamp("2026-03-01 08:00:00"); err == nil {
		t.Fatal("expected error for non-ISO layout")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-01")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if FormatDate(d) != "2026-03-01" {
		t.Fatalf("FormatDate = %q", FormatDate(d))
	}
}
