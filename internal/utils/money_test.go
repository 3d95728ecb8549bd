package utils

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		520:      "520.00",
		0.005:    "0.01",
		-61.239:  "-61.24",
		1075.001: "1075.00",
	}
	for in, want := range cases {
		if got := FormatMoney(in); got != want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	cases := map[float64]string{
		520:     "$520.00",
		1234.5:  "$1,234.50",
		1000000: "$1,000,000.00",
		-61.25:  "-$61.25",
		0:       "$0.00",
	}
	for in, want := range cases {
		if got := FormatUSD(in); got != want {
			t.Fatalf("FormatUSD(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRoundCents(t *testing.T) {
	if got := RoundCents(0.004999); got != 0.0 {
		t.Fatalf("RoundCents = %v", got)
	}
	if got := RoundCents(1075.006); got != 1075.01 {
		t.Fatalf("RoundCents = %v", got)
	}
}
