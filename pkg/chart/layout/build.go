package layout

import (
	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/labels"
)

const (
	// DefaultFrameWidth is the default frame width in device units.
	DefaultFrameWidth = 800.0

	// DefaultFrameHeight is the default frame height in device units.
	DefaultFrameHeight = 600.0

	// framePadding keeps marks and labels away from the frame edge.
	framePadding = 40.0

	// labelRise lifts a label's anchor above its mark so the text does not
	// sit on the data point itself.
	labelRise = 8.0

	// tickTarget is the tick count hint per axis.
	tickTarget = 5
)

// Options configures a layout pass.
type Options struct {
	FrameWidth  float64
	FrameHeight float64

	// HideLabels skips the label pass entirely (marks and axes only).
	HideLabels bool

	// Engine tunes the label placement engine. Zero fields use the
	// engine defaults.
	Engine labels.Config
}

// Build computes the device-space layout for a chart and runs the label
// collision pass. Labels are placed strictly in draw order: series in
// chart order, points in series order, which is the same order sinks draw
// them in.
func Build(c *chart.Chart, opts Options) (Layout, error) {
	if err := c.Validate(); err != nil {
		return Layout{}, err
	}

	if opts.FrameWidth <= 0 {
		opts.FrameWidth = DefaultFrameWidth
	}
	if opts.FrameHeight <= 0 {
		opts.FrameHeight = DefaultFrameHeight
	}

	bounds, ok := c.Bounds()
	if !ok {
		return Layout{}, nil
	}

	xs := chart.NewScale(bounds.MinX, bounds.MaxX, framePadding, opts.FrameWidth-framePadding)
	// Device Y grows downward; the scale is inverted so larger data values
	// land higher up the canvas.
	ys := chart.NewScale(bounds.MinY, bounds.MaxY, opts.FrameHeight-framePadding, framePadding)

	out := Layout{
		Kind:        c.Kind,
		Title:       c.Title,
		FrameWidth:  opts.FrameWidth,
		FrameHeight: opts.FrameHeight,
		Padding:     framePadding,
		XTicks:      buildTicks(xs, tickTarget),
		YTicks:      buildTicks(ys, tickTarget),
	}

	for _, s := range c.Series {
		sl := SeriesLayout{Name: s.Name, Marks: make([]Mark, 0, len(s.Points))}
		for _, p := range s.Points {
			sl.Marks = append(sl.Marks, Mark{
				X:     xs.Apply(p.X),
				Y:     ys.Apply(p.Y),
				Value: p.Y,
			})
		}
		out.Series = append(out.Series, sl)
	}

	if !opts.HideLabels {
		if err := placeLabels(c, &out, opts.Engine); err != nil {
			return Layout{}, err
		}
	}

	return out, nil
}

// placeLabels runs the collision pass over every mark, one Place call per
// label, and stores the adjusted positions. The occupancy snapshot and the
// nudge count are kept on the layout for diagnostics.
func placeLabels(c *chart.Chart, out *Layout, cfg labels.Config) error {
	ix := labels.New(cfg)

	for si, s := range c.Series {
		for pi, p := range s.Points {
			m := out.Series[si].Marks[pi]
			anchorY := m.Y - labelRise

			x, y, err := ix.Place(m.X, anchorY)
			if err != nil {
				return err
			}
			out.Labels = append(out.Labels, Label{
				Text:    chart.LabelText(p),
				X:       x,
				Y:       y,
				AnchorY: anchorY,
			})
		}
	}

	out.Occupancy = ix.Snapshot()
	out.NudgeCount = ix.Nudged()
	return nil
}

func buildTicks(s chart.Scale, n int) []Tick {
	vals := s.Ticks(n)
	ticks := make([]Tick, 0, len(vals))
	for _, v := range vals {
		ticks = append(ticks, Tick{
			Value:  v,
			Device: s.Apply(v),
			Text:   chart.FormatValue(v),
		})
	}
	return ticks
}
