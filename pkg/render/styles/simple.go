package styles

import (
	"bytes"
	"fmt"
)

// seriesPalette cycles per series index. Shared by the built-in styles.
var seriesPalette = []string{"#2563eb", "#dc2626", "#16a34a", "#d97706", "#9333ea", "#0891b2"}

// SeriesColor returns the palette color for a series index.
func SeriesColor(i int) string {
	return seriesPalette[i%len(seriesPalette)]
}

// Simple is a clean flat style: white background, thin gridlines, filled
// circular marks.
type Simple struct{}

// Name implements Style.
func (Simple) Name() string { return "simple" }

// RenderDefs implements Style. Simple needs no defs.
func (Simple) RenderDefs(buf *bytes.Buffer) {}

// RenderFrame implements Style.
func (Simple) RenderFrame(buf *bytes.Buffer, w, h float64) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n", w, h)
}

// RenderPath implements Style.
func (Simple) RenderPath(buf *bytes.Buffer, p Path) {
	if len(p.Points) < 2 {
		return
	}
	buf.WriteString(`  <polyline fill="none" stroke="` + SeriesColor(p.SeriesIdx) + `" stroke-width="2" points="`)
	for i, pt := range p.Points {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.1f,%.1f", pt[0], pt[1])
	}
	buf.WriteString(`"/>` + "\n")
}

// RenderMark implements Style.
func (Simple) RenderMark(buf *bytes.Buffer, m Mark) {
	color := SeriesColor(m.SeriesIdx)
	if m.Kind == "bar" {
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.85"/>`+"\n",
			m.X-m.BarWidth/2, m.Y, m.BarWidth, m.BaselineY-m.Y, color)
		return
	}
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="3.5" fill="%s"/>`+"\n", m.X, m.Y, color)
}

// RenderLabel implements Style.
func (Simple) RenderLabel(buf *bytes.Buffer, l Label) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="#1f2937" text-anchor="middle">%s</text>`+"\n",
		l.X, l.Y, FontFamily, LabelFontSize, EscapeXML(TruncateLabel(l.Text)))
}

// RenderTick implements Style.
func (Simple) RenderTick(buf *bytes.Buffer, t Tick) {
	if t.Axis == "x" {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e5e7eb" stroke-width="1"/>`+"\n",
			t.Device, t.Inset, t.Device, t.Extent)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="#6b7280" text-anchor="middle">%s</text>`+"\n",
			t.Device, t.Extent+16, FontFamily, TickFontSize, EscapeXML(t.Text))
		return
	}
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e5e7eb" stroke-width="1"/>`+"\n",
		t.Inset, t.Device, t.Extent, t.Device)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="#6b7280" text-anchor="end">%s</text>`+"\n",
		t.Inset-6, t.Device+3, FontFamily, TickFontSize, EscapeXML(t.Text))
}

// RenderTitle implements Style.
func (Simple) RenderTitle(buf *bytes.Buffer, title string, w float64) {
	if title == "" {
		return
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="26" font-family="%s" font-size="%.0f" font-weight="bold" fill="#111827" text-anchor="middle">%s</text>`+"\n",
		w/2, FontFamily, TitleFontSize, EscapeXML(title))
}

// Ensure Simple implements Style.
var _ Style = Simple{}
