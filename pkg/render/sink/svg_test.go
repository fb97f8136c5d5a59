package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/chart/layout"
	"github.com/matzehuels/plotdeck/pkg/render/styles"
)

func testLayout(t *testing.T) layout.Layout {
	t.Helper()
	c := &chart.Chart{
		Title: "Requests",
		Kind:  chart.KindLine,
		Series: []chart.Series{
			{Name: "api", Points: []chart.Point{{X: 0, Y: 10}, {X: 1, Y: 20}, {X: 2, Y: 20}}},
		},
	}
	l, err := layout.Build(c, layout.Options{})
	if err != nil {
		t.Fatalf("layout.Build() error = %v", err)
	}
	return l
}

func TestRenderSVG_Document(t *testing.T) {
	svg := string(RenderSVG(testLayout(t)))

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Errorf("SVG does not start with root element: %.60q", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Errorf("SVG not closed: %.40q", svg[len(svg)-40:])
	}
	if !strings.Contains(svg, "<polyline") {
		t.Error("line chart SVG missing series polyline")
	}
	if strings.Count(svg, "<circle") != 3 {
		t.Errorf("SVG circle count = %d, want 3", strings.Count(svg, "<circle"))
	}
	if !strings.Contains(svg, ">Requests</text>") {
		t.Error("SVG missing title text")
	}
}

func TestRenderSVG_LabelsAtAdjustedPositions(t *testing.T) {
	l := testLayout(t)
	svg := string(RenderSVG(l))

	// Every placed label's text must appear in the document.
	for _, lb := range l.Labels {
		if !strings.Contains(svg, ">"+lb.Text+"</text>") {
			t.Errorf("SVG missing label %q", lb.Text)
		}
	}
}

func TestRenderSVG_Options(t *testing.T) {
	l := testLayout(t)

	plain := string(RenderSVG(l, WithoutGrid()))
	if strings.Contains(plain, `stroke="#e5e7eb"`) {
		t.Error("WithoutGrid still emitted gridlines")
	}

	dark := string(RenderSVG(l, WithStyle(styles.Midnight{})))
	if !strings.Contains(dark, "#0b1120") {
		t.Error("Midnight style did not set dark background")
	}
}

func TestRenderSVG_BarKind(t *testing.T) {
	c := &chart.Chart{
		Kind: chart.KindBar,
		Series: []chart.Series{
			{Name: "a", Points: []chart.Point{{X: 0, Y: 1}, {X: 1, Y: 2}}},
		},
	}
	l, err := layout.Build(c, layout.Options{})
	if err != nil {
		t.Fatalf("layout.Build() error = %v", err)
	}

	svg := string(RenderSVG(l))
	if !strings.Contains(svg, `fill-opacity="0.85"`) {
		t.Error("bar chart SVG missing bar rects")
	}
	if strings.Contains(svg, "<polyline") {
		t.Error("bar chart SVG should not contain a polyline")
	}
}
