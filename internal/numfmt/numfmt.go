// Package numfmt renders float64 values the way the calculator displays them.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// OneDecimal rounds v to one decimal place for display.
func OneDecimal(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Plain renders v with the fewest digits that round-trip, always keeping at
// least one fractional digit (0 -> "0.0", 1.375 -> "1.375").
func Plain(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// nonFinite spells out overflowed values in lower case ("inf", "-inf", "nan").
func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	case math.IsNaN(v):
		return "nan", true
	}
	return "", false
}
