// Package styles defines the visual appearance for chart rendering.
// Implementations write SVG fragments; sinks decide document structure.
package styles

import "bytes"

// Style defines the visual appearance for chart rendering. Implementations
// control how marks, series paths, axis ticks, and labels are drawn.
type Style interface {
	// Name returns the registry name of the style.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderFrame writes the chart background and border.
	RenderFrame(buf *bytes.Buffer, w, h float64)
	// RenderPath writes the SVG for a series polyline (line charts).
	RenderPath(buf *bytes.Buffer, p Path)
	// RenderMark writes the SVG for a single data mark.
	RenderMark(buf *bytes.Buffer, m Mark)
	// RenderLabel writes the SVG for a value label at its adjusted position.
	RenderLabel(buf *bytes.Buffer, l Label)
	// RenderTick writes the SVG for an axis tick and its gridline.
	RenderTick(buf *bytes.Buffer, t Tick)
	// RenderTitle writes the chart title.
	RenderTitle(buf *bytes.Buffer, title string, w float64)
}

// Mark contains all data needed to render a single data mark.
type Mark struct {
	SeriesIdx int     // Index of the owning series (drives color cycling)
	Kind      string  // Chart kind ("line", "scatter", "bar")
	X, Y      float64 // Device position
	BaselineY float64 // Bar foot position (bar charts only)
	BarWidth  float64 // Bar width (bar charts only)
}

// Path contains the positions of one series polyline.
type Path struct {
	SeriesIdx int
	Points    [][2]float64
}

// Label contains a value label and its collision-adjusted position.
type Label struct {
	Text string
	X, Y float64
}

// Tick contains an axis tick position.
type Tick struct {
	Axis    string  // "x" or "y"
	Device  float64 // Position along the axis
	Extent  float64 // Gridline length across the frame
	Inset   float64 // Frame padding offset
	Text    string
}
