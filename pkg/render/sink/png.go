package sink

import (
	"bytes"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/chart/layout"
	"github.com/matzehuels/plotdeck/pkg/fonts"
	"github.com/matzehuels/plotdeck/pkg/render/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
	dark  bool
}

// WithScale sets the raster scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithDarkTheme renders on the midnight palette instead of the light one.
func WithDarkTheme() PNGOption {
	return func(r *pngRenderer) { r.dark = true }
}

// RenderPNG rasterises the layout directly with a 2-D drawing context.
// Labels are drawn at their collision-adjusted positions, same as the SVG
// sink. Requires a system sans-serif font for text.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	dc := gg.NewContext(int(l.FrameWidth*r.scale), int(l.FrameHeight*r.scale))
	dc.Scale(r.scale, r.scale)

	var bg, fg, grid color.Color = color.White, color.Black, color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	if r.dark {
		bg = color.RGBA{R: 0x0b, G: 0x11, B: 0x20, A: 0xff}
		fg = color.RGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
		grid = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	}

	dc.SetColor(bg)
	dc.Clear()

	// Grid
	dc.SetColor(grid)
	dc.SetLineWidth(1)
	for _, t := range l.XTicks {
		dc.DrawLine(t.Device, l.Padding, t.Device, l.FrameHeight-l.Padding)
		dc.Stroke()
	}
	for _, t := range l.YTicks {
		dc.DrawLine(l.Padding, t.Device, l.FrameWidth-l.Padding, t.Device)
		dc.Stroke()
	}

	// Series geometry
	for si, s := range l.Series {
		cr, cg, cb := paletteRGB(si)
		dc.SetRGB(cr, cg, cb)

		if l.Kind == chart.KindLine && len(s.Marks) > 1 {
			dc.SetLineWidth(2)
			dc.MoveTo(s.Marks[0].X, s.Marks[0].Y)
			for _, m := range s.Marks[1:] {
				dc.LineTo(m.X, m.Y)
			}
			dc.Stroke()
		}

		for _, m := range s.Marks {
			if l.Kind == chart.KindBar {
				w := barWidth(l, s)
				dc.DrawRectangle(m.X-w/2, m.Y, w, l.FrameHeight-l.Padding-m.Y)
				dc.Fill()
				continue
			}
			dc.DrawCircle(m.X, m.Y, 3.5)
			dc.Fill()
		}
	}

	// Text: tick labels, value labels, title
	face, err := fonts.Face(styles.LabelFontSize)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)
	dc.SetColor(fg)

	for _, t := range l.XTicks {
		dc.DrawStringAnchored(t.Text, t.Device, l.FrameHeight-l.Padding+16, 0.5, 0.5)
	}
	for _, t := range l.YTicks {
		dc.DrawStringAnchored(t.Text, l.Padding-6, t.Device, 1.0, 0.5)
	}
	for _, lb := range l.Labels {
		dc.DrawStringAnchored(styles.TruncateLabel(lb.Text), lb.X, lb.Y, 0.5, 0.5)
	}

	if l.Title != "" {
		titleFace, err := fonts.Face(styles.TitleFontSize)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(titleFace)
		dc.DrawStringAnchored(l.Title, l.FrameWidth/2, 26, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// paletteRGB mirrors styles.SeriesColor for the raster path.
func paletteRGB(i int) (float64, float64, float64) {
	palette := [][3]float64{
		{0x25 / 255.0, 0x63 / 255.0, 0xeb / 255.0},
		{0xdc / 255.0, 0x26 / 255.0, 0x26 / 255.0},
		{0x16 / 255.0, 0xa3 / 255.0, 0x4a / 255.0},
		{0xd9 / 255.0, 0x77 / 255.0, 0x06 / 255.0},
		{0x93 / 255.0, 0x33 / 255.0, 0xea / 255.0},
		{0x08 / 255.0, 0x91 / 255.0, 0xb2 / 255.0},
	}
	c := palette[i%len(palette)]
	return c[0], c[1], c[2]
}
