package layout

import "github.com/matzehuels/plotdeck/pkg/chart"

// Mark is a single data point positioned in device coordinates.
type Mark struct {
	X, Y  float64 // device position
	Value float64 // original data Y value
}

// SeriesLayout holds the positioned marks for one series, in draw order.
type SeriesLayout struct {
	Name  string
	Marks []Mark
}

// Label is a positioned text label. Y is the final (collision-adjusted)
// vertical draw position; AnchorY is where the label would have landed
// without adjustment. X always equals the anchor X.
type Label struct {
	Text    string
	X       float64
	Y       float64
	AnchorY float64
}

// Nudged reports whether the placement engine moved this label.
func (l Label) Nudged() bool { return l.Y != l.AnchorY }

// Tick is an axis tick: a data value and its device position.
type Tick struct {
	Value  float64
	Device float64
	Text   string
}

// Layout is the full device-space geometry for one chart render.
type Layout struct {
	Kind        chart.Kind
	Title       string
	FrameWidth  float64
	FrameHeight float64
	Padding     float64
	Series      []SeriesLayout
	Labels      []Label
	XTicks      []Tick
	YTicks      []Tick

	// Occupancy is the label engine's grid snapshot after the pass,
	// kept for diagnostics (the inspect command renders it).
	Occupancy map[int][]int

	// NudgeCount is the total number of nudges the engine applied.
	NudgeCount int
}

// LabelCount returns the number of placed labels.
func (l Layout) LabelCount() int { return len(l.Labels) }

// NudgedLabels returns how many labels ended up away from their anchor.
func (l Layout) NudgedLabels() int {
	n := 0
	for _, lb := range l.Labels {
		if lb.Nudged() {
			n++
		}
	}
	return n
}
