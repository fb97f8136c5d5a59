package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/chart/layout"
	"github.com/matzehuels/plotdeck/pkg/render/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style    styles.Style
	hideGrid bool
}

// WithStyle sets the visual style (default styles.Simple).
func WithStyle(s styles.Style) SVGOption {
	return func(r *svgRenderer) { r.style = s }
}

// WithoutGrid suppresses axis ticks and gridlines.
func WithoutGrid() SVGOption {
	return func(r *svgRenderer) { r.hideGrid = true }
}

// RenderSVG renders the layout as an SVG document. Draw order matches the
// label pass: frame, grid, series paths and marks, then labels, so a label's
// adjusted position is always painted above the geometry it annotates.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.FrameWidth, l.FrameHeight, l.FrameWidth, l.FrameHeight)

	r.style.RenderDefs(&buf)
	r.style.RenderFrame(&buf, l.FrameWidth, l.FrameHeight)

	if !r.hideGrid {
		renderGrid(&buf, r.style, l)
	}

	for si, s := range l.Series {
		if l.Kind == chart.KindLine {
			r.style.RenderPath(&buf, seriesPath(si, s))
		}
		for _, m := range s.Marks {
			r.style.RenderMark(&buf, styles.Mark{
				SeriesIdx: si,
				Kind:      string(l.Kind),
				X:         m.X,
				Y:         m.Y,
				BaselineY: l.FrameHeight - l.Padding,
				BarWidth:  barWidth(l, s),
			})
		}
	}

	for _, lb := range l.Labels {
		r.style.RenderLabel(&buf, styles.Label{Text: lb.Text, X: lb.X, Y: lb.Y})
	}

	r.style.RenderTitle(&buf, l.Title, l.FrameWidth)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderGrid(buf *bytes.Buffer, style styles.Style, l layout.Layout) {
	for _, t := range l.XTicks {
		style.RenderTick(buf, styles.Tick{
			Axis:   "x",
			Device: t.Device,
			Inset:  l.Padding,
			Extent: l.FrameHeight - l.Padding,
			Text:   t.Text,
		})
	}
	for _, t := range l.YTicks {
		style.RenderTick(buf, styles.Tick{
			Axis:   "y",
			Device: t.Device,
			Inset:  l.Padding,
			Extent: l.FrameWidth - l.Padding,
			Text:   t.Text,
		})
	}
}

func seriesPath(si int, s layout.SeriesLayout) styles.Path {
	p := styles.Path{SeriesIdx: si, Points: make([][2]float64, 0, len(s.Marks))}
	for _, m := range s.Marks {
		p.Points = append(p.Points, [2]float64{m.X, m.Y})
	}
	return p
}

// barWidth spreads bars across the inner frame with a 20% gap.
func barWidth(l layout.Layout, s layout.SeriesLayout) float64 {
	n := len(s.Marks)
	if n == 0 {
		return 0
	}
	inner := l.FrameWidth - 2*l.Padding
	return inner / float64(n) * 0.8
}
