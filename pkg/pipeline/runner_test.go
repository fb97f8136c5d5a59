package pipeline

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotdeck/pkg/cache"
)

const testCSV = "series,x,y\nlatency,100,50\nlatency,100,50\nlatency,200,50\n"

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(cache.NewNullCache(), nil, quietLogger())
	defer r.Close()

	result, err := r.Execute(ctx, Options{
		Data:    testCSV,
		Format:  "csv",
		Title:   "Latency",
		Formats: []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.Chart == nil || result.Chart.Title != "Latency" {
		t.Errorf("Chart title = %v, want Latency", result.Chart)
	}
	if result.Stats.PointCount != 3 {
		t.Errorf("PointCount = %d, want 3", result.Stats.PointCount)
	}
	if result.Stats.LabelCount != 3 {
		t.Errorf("LabelCount = %d, want 3", result.Stats.LabelCount)
	}
	if result.ChartHash == "" {
		t.Error("ChartHash should be set")
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !strings.Contains(string(svg), "<svg") {
		t.Error("Execute should produce an SVG artifact")
	}
	if _, ok := result.Artifacts[FormatJSON]; !ok {
		t.Error("Execute should produce a JSON artifact")
	}

	// Two identical anchors collide, so at least one label moves.
	if result.Stats.NudgedLabels == 0 {
		t.Error("Colliding anchors should report nudged labels")
	}
}

func TestRunnerExecuteCaching(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, quietLogger())
	defer r.Close()

	opts := Options{Data: testCSV, Format: "csv", Formats: []string{FormatSVG}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("First Execute error: %v", err)
	}
	if first.CacheInfo.ParseHit || first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("First run should miss everywhere: %+v", first.CacheInfo)
	}

	second, err := r.Execute(ctx, Options{Data: testCSV, Format: "csv", Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatalf("Second Execute error: %v", err)
	}
	if !second.CacheInfo.ParseHit || !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("Second run should hit everywhere: %+v", second.CacheInfo)
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("Cached artifact should match the original render")
	}
}

func TestRunnerExecuteRefresh(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, quietLogger())
	defer r.Close()

	if _, err := r.Execute(ctx, Options{Data: testCSV, Format: "csv"}); err != nil {
		t.Fatal(err)
	}

	// Refresh bypasses the dataset cache
	result, err := r.Execute(ctx, Options{Data: testCSV, Format: "csv", Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.ParseHit {
		t.Error("Refresh should bypass the dataset cache")
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, quietLogger())

	if _, err := r.Execute(ctx, Options{}); err == nil {
		t.Error("Execute with no input should fail")
	}
	if _, err := r.Execute(ctx, Options{Data: testCSV, Format: "csv", Style: "neon"}); err == nil {
		t.Error("Execute with unknown style should fail")
	}
}

func TestRunnerParseRemoteDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x,y\n100,50\n100,50\n200,50\n"))
	}))
	defer srv.Close()

	ctx := context.Background()
	r := NewRunner(nil, nil, quietLogger())

	ch, err := r.Parse(ctx, Options{Input: srv.URL + "/latency.csv"})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if ch.PointCount() != 3 {
		t.Errorf("PointCount = %d, want 3", ch.PointCount())
	}
	// Without a series column the URL basename names the series.
	if got := ch.Series[0].Name; got != "latency" {
		t.Errorf("series name = %q, want %q", got, "latency")
	}
}

func TestRunnerParseKindOverride(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, quietLogger())

	ch, err := r.Parse(ctx, Options{Data: testCSV, Format: "csv", Kind: "scatter"})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if string(ch.Kind) != "scatter" {
		t.Errorf("Kind = %s, want scatter (override)", ch.Kind)
	}
}
