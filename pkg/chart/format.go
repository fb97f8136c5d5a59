package chart

import (
	"strconv"
	"strings"
)

// FormatValue formats a data value for display as a label. Integers render
// without a decimal point; everything else keeps up to two decimals with
// trailing zeros trimmed.
func FormatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// LabelText returns the text to draw for a point: the explicit label when
// set, otherwise the formatted Y value.
func LabelText(p Point) string {
	if p.Label != "" {
		return p.Label
	}
	return FormatValue(p.Y)
}
