package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/chart/layout"
)

func TestRenderJSON_RoundTrip(t *testing.T) {
	l := testLayout(t)

	data, err := RenderJSON(l)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var decoded struct {
		Kind   string `json:"kind"`
		Width  float64
		Height float64
		Series []struct {
			Name   string
			Points [][2]float64
		}
		Labels []struct {
			Text    string
			Y       float64
			AnchorY float64 `json:"anchor_y"`
			Nudged  bool
		}
		NudgeCount int              `json:"nudge_count"`
		Occupancy  map[string][]int `json:"occupancy"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Kind != "line" {
		t.Errorf("kind = %q, want line", decoded.Kind)
	}
	if len(decoded.Series) != 1 || len(decoded.Series[0].Points) != 3 {
		t.Errorf("series = %+v, want 1 series with 3 points", decoded.Series)
	}
	if len(decoded.Labels) != 3 {
		t.Errorf("labels = %d, want 3", len(decoded.Labels))
	}
	if len(decoded.Occupancy) == 0 {
		t.Error("occupancy snapshot missing from JSON output")
	}
}

func TestRenderJSON_NudgedFlag(t *testing.T) {
	c := &chart.Chart{
		Kind: chart.KindScatter,
		Series: []chart.Series{
			{Name: "a", Points: []chart.Point{{X: 1, Y: 5}, {X: 1, Y: 5}}},
		},
	}
	l, err := layout.Build(c, layout.Options{})
	if err != nil {
		t.Fatalf("layout.Build() error = %v", err)
	}

	data, err := RenderJSON(l)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var decoded struct {
		Labels []struct {
			Nudged bool
		}
		NudgeCount int `json:"nudge_count"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Labels[0].Nudged || !decoded.Labels[1].Nudged {
		t.Errorf("nudged flags = %+v, want second label nudged only", decoded.Labels)
	}
	if decoded.NudgeCount == 0 {
		t.Error("nudge_count = 0, want > 0")
	}
}
