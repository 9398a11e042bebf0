package formatter

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Pct formats a percentage with one decimal.
func Pct(v float64) string {
	return formatFloat(v) + "%"
}

// Won formats a money amount with thousands separators, e.g. "1,800,000원".
func Won(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg, s = true, s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s + "원"
}

// Date formats a calendar date.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}
