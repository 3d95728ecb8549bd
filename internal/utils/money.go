package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent two-decimal formatting for currency fields.
// Rounding happens here, at the presentation boundary, never inside the
// calculator, so chained calculations do not compound rounding error.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// RoundCents rounds to 2 decimal places for display aggregates.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatUSD renders an amount with a dollar sign and thousand separators.
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	cents := int64(math.Round((amount - float64(whole)) * 100))
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return fmt.Sprintf("%s$%s.%02d", sign, formatThousand(whole), cents)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
