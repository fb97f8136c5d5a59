package chart

import (
	"math"
	"testing"
)

func validChart() *Chart {
	return &Chart{
		Kind: KindLine,
		Series: []Series{
			{Name: "cpu", Points: []Point{{X: 0, Y: 10}, {X: 1, Y: 20}}},
			{Name: "mem", Points: []Point{{X: 0, Y: 5}, {X: 1, Y: 40}}},
		},
	}
}

func TestChart_Validate(t *testing.T) {
	if err := validChart().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestChart_Validate_UnknownKind(t *testing.T) {
	c := validChart()
	c.Kind = "pie"
	if err := c.Validate(); err == nil {
		t.Error("Validate() = nil, want error for unknown kind")
	}
}

func TestChart_Validate_NoSeries(t *testing.T) {
	c := &Chart{Kind: KindLine}
	if err := c.Validate(); err == nil {
		t.Error("Validate() = nil, want error for empty chart")
	}
}

func TestChart_Validate_NonFinite(t *testing.T) {
	c := validChart()
	c.Series[0].Points[1].Y = math.NaN()
	if err := c.Validate(); err == nil {
		t.Error("Validate() = nil, want error for NaN value")
	}
}

func TestChart_Bounds(t *testing.T) {
	c := validChart()
	b, ok := c.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false, want true")
	}
	if b.MinX != 0 || b.MaxX != 1 || b.MinY != 5 || b.MaxY != 40 {
		t.Errorf("Bounds() = %+v, want {0 1 5 40}", b)
	}
}

func TestChart_Bounds_Empty(t *testing.T) {
	c := &Chart{Kind: KindLine}
	if _, ok := c.Bounds(); ok {
		t.Error("Bounds() ok = true for empty chart, want false")
	}
}

func TestScale_Apply(t *testing.T) {
	s := NewScale(0, 100, 0, 800)
	tests := []struct {
		v, want float64
	}{
		{0, 0},
		{50, 400},
		{100, 800},
	}
	for _, tt := range tests {
		if got := s.Apply(tt.v); got != tt.want {
			t.Errorf("Apply(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestScale_Apply_Inverted(t *testing.T) {
	// Canvas-style Y axis: larger data values land higher up (smaller y).
	s := NewScale(0, 100, 600, 0)
	if got := s.Apply(100); got != 0 {
		t.Errorf("Apply(100) = %v, want 0", got)
	}
	if got := s.Apply(0); got != 600 {
		t.Errorf("Apply(0) = %v, want 600", got)
	}
}

func TestScale_Apply_Degenerate(t *testing.T) {
	s := NewScale(7, 7, 0, 800)
	if got := s.Apply(7); got != 400 {
		t.Errorf("Apply(7) = %v, want device midpoint 400", got)
	}
}

func TestScale_Invert(t *testing.T) {
	s := NewScale(0, 100, 0, 800)
	if got := s.Invert(400); got != 50 {
		t.Errorf("Invert(400) = %v, want 50", got)
	}
}

func TestScale_Ticks(t *testing.T) {
	s := NewScale(0, 100, 0, 800)
	ticks := s.Ticks(5)
	if len(ticks) == 0 {
		t.Fatal("Ticks(5) returned no ticks")
	}
	if ticks[0] != 0 {
		t.Errorf("Ticks(5)[0] = %v, want 0", ticks[0])
	}
	if last := ticks[len(ticks)-1]; last != 100 {
		t.Errorf("Ticks(5) last = %v, want 100", last)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] <= ticks[i-1] {
			t.Errorf("Ticks(5) not strictly increasing at %d: %v", i, ticks)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{42, "42"},
		{-7, "-7"},
		{3.5, "3.5"},
		{3.14159, "3.14"},
		{120.50, "120.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestLabelText(t *testing.T) {
	if got := LabelText(Point{Y: 12, Label: "peak"}); got != "peak" {
		t.Errorf("LabelText explicit = %q, want %q", got, "peak")
	}
	if got := LabelText(Point{Y: 12}); got != "12" {
		t.Errorf("LabelText fallback = %q, want %q", got, "12")
	}
}
