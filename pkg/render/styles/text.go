package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	// LabelFontSize is the value-label text size in device units. Label
	// collision windows in the layout engine are tuned for text of roughly
	// this extent.
	LabelFontSize = 11.0

	// TickFontSize is the axis tick text size.
	TickFontSize = 10.0

	// TitleFontSize is the chart title text size.
	TitleFontSize = 18.0

	fontCharWidth = 0.55
	maxLabelChars = 24
)

// FontFamily is the CSS font stack used by the built-in styles.
const FontFamily = `'Helvetica Neue', Helvetica, Arial, sans-serif`

// ApproxTextWidth estimates the rendered width of s at the given font size.
// Good enough for centering; exact metrics are a sink concern (the PNG sink
// measures real glyphs).
func ApproxTextWidth(s string, size float64) float64 {
	return float64(len(s)) * size * fontCharWidth
}

// TruncateLabel shortens label text that would overflow its surroundings.
func TruncateLabel(s string) string {
	if len(s) <= maxLabelChars {
		return s
	}
	return s[:maxLabelChars-2] + ".."
}

// EscapeXML escapes text for embedding in SVG.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
