package sink

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/matzehuels/plotdeck/pkg/chart/layout"
)

// jsonLayout is the wire shape for the JSON sink. It flattens the layout
// into plain arrays and string-keys the occupancy snapshot (JSON objects
// cannot have integer keys).
type jsonLayout struct {
	Kind       string           `json:"kind"`
	Title      string           `json:"title,omitempty"`
	Width      float64          `json:"width"`
	Height     float64          `json:"height"`
	Series     []jsonSeries     `json:"series"`
	Labels     []jsonLabel      `json:"labels"`
	NudgeCount int              `json:"nudge_count"`
	Occupancy  map[string][]int `json:"occupancy,omitempty"`
}

type jsonSeries struct {
	Name   string       `json:"name"`
	Points [][2]float64 `json:"points"`
}

type jsonLabel struct {
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	AnchorY float64 `json:"anchor_y"`
	Nudged  bool    `json:"nudged"`
}

// RenderJSON serialises the layout, including label placements and the
// occupancy snapshot, as indented JSON.
func RenderJSON(l layout.Layout) ([]byte, error) {
	out := jsonLayout{
		Kind:       string(l.Kind),
		Title:      l.Title,
		Width:      l.FrameWidth,
		Height:     l.FrameHeight,
		Series:     make([]jsonSeries, 0, len(l.Series)),
		Labels:     make([]jsonLabel, 0, len(l.Labels)),
		NudgeCount: l.NudgeCount,
	}

	for _, s := range l.Series {
		js := jsonSeries{Name: s.Name, Points: make([][2]float64, 0, len(s.Marks))}
		for _, m := range s.Marks {
			js.Points = append(js.Points, [2]float64{m.X, m.Y})
		}
		out.Series = append(out.Series, js)
	}

	for _, lb := range l.Labels {
		out.Labels = append(out.Labels, jsonLabel{
			Text:    lb.Text,
			X:       lb.X,
			Y:       lb.Y,
			AnchorY: lb.AnchorY,
			Nudged:  lb.Nudged(),
		})
	}

	if l.Occupancy != nil {
		out.Occupancy = make(map[string][]int, len(l.Occupancy))
		for xx, ys := range l.Occupancy {
			out.Occupancy[strconv.Itoa(xx)] = ys
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
