package styles

import (
	"bytes"
	"fmt"
)

// Midnight is a dark dashboard style: near-black background, muted grid,
// glowing marks.
type Midnight struct{}

// Name implements Style.
func (Midnight) Name() string { return "midnight" }

// RenderDefs implements Style.
func (Midnight) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="glow" x="-50%" y="-50%" width="200%" height="200%">
      <feGaussianBlur stdDeviation="2" result="blur"/>
      <feMerge>
        <feMergeNode in="blur"/>
        <feMergeNode in="SourceGraphic"/>
      </feMerge>
    </filter>
  </defs>
`)
}

// RenderFrame implements Style.
func (Midnight) RenderFrame(buf *bytes.Buffer, w, h float64) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#0b1120"/>`+"\n", w, h)
}

// RenderPath implements Style.
func (Midnight) RenderPath(buf *bytes.Buffer, p Path) {
	if len(p.Points) < 2 {
		return
	}
	buf.WriteString(`  <polyline fill="none" stroke="` + SeriesColor(p.SeriesIdx) + `" stroke-width="2" filter="url(#glow)" points="`)
	for i, pt := range p.Points {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.1f,%.1f", pt[0], pt[1])
	}
	buf.WriteString(`"/>` + "\n")
}

// RenderMark implements Style.
func (Midnight) RenderMark(buf *bytes.Buffer, m Mark) {
	color := SeriesColor(m.SeriesIdx)
	if m.Kind == "bar" {
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.75"/>`+"\n",
			m.X-m.BarWidth/2, m.Y, m.BarWidth, m.BaselineY-m.Y, color)
		return
	}
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="3.5" fill="%s" filter="url(#glow)"/>`+"\n", m.X, m.Y, color)
}

// RenderLabel implements Style.
func (Midnight) RenderLabel(buf *bytes.Buffer, l Label) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="#e2e8f0" text-anchor="middle">%s</text>`+"\n",
		l.X, l.Y, FontFamily, LabelFontSize, EscapeXML(TruncateLabel(l.Text)))
}

// RenderTick implements Style.
func (Midnight) RenderTick(buf *bytes.Buffer, t Tick) {
	if t.Axis == "x" {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#1e293b" stroke-width="1"/>`+"\n",
			t.Device, t.Inset, t.Device, t.Extent)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="#64748b" text-anchor="middle">%s</text>`+"\n",
			t.Device, t.Extent+16, FontFamily, TickFontSize, EscapeXML(t.Text))
		return
	}
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#1e293b" stroke-width="1"/>`+"\n",
		t.Inset, t.Device, t.Extent, t.Device)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="#64748b" text-anchor="end">%s</text>`+"\n",
		t.Inset-6, t.Device+3, FontFamily, TickFontSize, EscapeXML(t.Text))
}

// RenderTitle implements Style.
func (Midnight) RenderTitle(buf *bytes.Buffer, title string, w float64) {
	if title == "" {
		return
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="26" font-family="%s" font-size="%.0f" font-weight="bold" fill="#f8fafc" text-anchor="middle">%s</text>`+"\n",
		w/2, FontFamily, TitleFontSize, EscapeXML(title))
}

// Ensure Midnight implements Style.
var _ Style = Midnight{}
