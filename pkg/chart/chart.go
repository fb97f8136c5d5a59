package chart

import (
	"github.com/matzehuels/plotdeck/pkg/errors"
)

// Kind identifies the chart type.
type Kind string

// Supported chart kinds.
const (
	KindLine    Kind = "line"
	KindScatter Kind = "scatter"
	KindBar     Kind = "bar"
)

// ValidKinds is the set of supported chart kinds.
var ValidKinds = map[Kind]bool{
	KindLine:    true,
	KindScatter: true,
	KindBar:     true,
}

// Point is a single data point. Label is the text drawn next to the point;
// when empty, the formatted Y value is used.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// Series is a named sequence of points drawn in order.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Chart is the root of the data model: a titled collection of series.
type Chart struct {
	Title  string   `json:"title,omitempty"`
	Kind   Kind     `json:"kind"`
	Series []Series `json:"series"`
}

// PointCount returns the total number of points across all series.
func (c *Chart) PointCount() int {
	n := 0
	for _, s := range c.Series {
		n += len(s.Points)
	}
	return n
}

// Bounds returns the extent of the data in data space. The second return
// value is false when the chart has no points.
func (c *Chart) Bounds() (Bounds, bool) {
	var b Bounds
	found := false
	for _, s := range c.Series {
		for _, p := range s.Points {
			if !found {
				b = Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
				found = true
				continue
			}
			b.MinX = min(b.MinX, p.X)
			b.MaxX = max(b.MaxX, p.X)
			b.MinY = min(b.MinY, p.Y)
			b.MaxY = max(b.MaxY, p.Y)
		}
	}
	return b, found
}

// Validate checks the chart for structural problems: unknown kind, unnamed
// or empty series, and non-finite values (which the layout engine rejects).
func (c *Chart) Validate() error {
	if !ValidKinds[c.Kind] {
		return errors.New(errors.ErrCodeInvalidKind, "unknown chart kind %q", c.Kind)
	}
	if len(c.Series) == 0 {
		return errors.New(errors.ErrCodeInvalidDataset, "chart has no series")
	}
	for _, s := range c.Series {
		if err := errors.ValidateSeriesName(s.Name); err != nil {
			return err
		}
		for i, p := range s.Points {
			if err := errors.ValidateFinite("x", p.X); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDataset, err, "series %q point %d", s.Name, i)
			}
			if err := errors.ValidateFinite("y", p.Y); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDataset, err, "series %q point %d", s.Name, i)
			}
		}
	}
	return nil
}

// Bounds is a rectangle in data space.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }
