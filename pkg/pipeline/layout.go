package pipeline

import (
	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/chart/layout"
)

// ComputeLayout scales a chart into device space and runs the label
// placement pass. Every call observes a fresh occupancy index, so the
// result depends only on the chart and options.
func ComputeLayout(ch *chart.Chart, opts Options) (layout.Layout, error) {
	opts.SetLayoutDefaults()

	return layout.Build(ch, layout.Options{
		FrameWidth:  float64(opts.Width),
		FrameHeight: float64(opts.Height),
		HideLabels:  opts.HideLabels,
		Engine:      opts.Engine,
	})
}
