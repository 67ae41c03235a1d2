package catalog

import (
	"math"
	"strconv"
	"strings"
)

const (
	MinQuantity = 1
	MaxQuantity = 10
)

// ClampQuantity bounds a quantity picked on a product page to 1..10.
func ClampQuantity(n int) int {
	return min(max(n, MinQuantity), MaxQuantity)
}

// FormatPrice renders v in pesos with thousands separators and at most
// three fraction digits, e.g. 34999 -> "₱34,999", 1234.5 -> "₱1,234.5".
func FormatPrice(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	s := strconv.FormatFloat(math.Round(v*1000)/1000, 'f', 3, 64)
	whole, frac, _ := strings.Cut(s, ".")
	frac = strings.TrimRight(frac, "0")

	var b strings.Builder
	b.WriteString("₱")
	b.WriteString(sign)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
