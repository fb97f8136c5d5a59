package labels

import (
	"math"
	"testing"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		unit int
		bias int
		want int
	}{
		{"offset below bias", 12, 5, 5, 10},
		{"offset above bias", 18, 5, 5, 15},
		{"offset at bias", 45, 5, 5, 45},
		{"exact decade", 50, 5, 5, 50},
		{"zero", 0, 5, 5, 0},
		{"negative below bias", -12, 5, 5, -10},
		{"negative above bias", -18, 5, 5, -15},
		{"negative at bias", -45, 5, 5, -45},
		{"fractional", 12.7, 5, 5, 10},
		{"fractional above bias", 17.3, 5, 5, 15},
		{"independent bias", 13, 5, 2, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quantize(tt.v, tt.unit, tt.bias); got != tt.want {
				t.Errorf("quantize(%v, %d, %d) = %d, want %d", tt.v, tt.unit, tt.bias, got, tt.want)
			}
		})
	}
}

func TestPlace_EmptyIndex(t *testing.T) {
	ix := New(DefaultConfig())

	x, y, err := ix.Place(100, 50)
	if err != nil {
		t.Fatalf("Place(100, 50) error = %v", err)
	}
	if x != 100 || y != 50 {
		t.Errorf("Place(100, 50) = (%v, %v), want (100, 50)", x, y)
	}
	if ix.Cells() != 1 {
		t.Errorf("Cells() = %d, want 1", ix.Cells())
	}
}

func TestPlace_SameAnchorNudges(t *testing.T) {
	ix := New(DefaultConfig())

	if _, y, _ := ix.Place(100, 50); y != 50 {
		t.Fatalf("first Place(100, 50) y = %v, want 50", y)
	}
	if _, y, _ := ix.Place(100, 50); y != 45 {
		t.Errorf("second Place(100, 50) y = %v, want 45", y)
	}
	if _, y, _ := ix.Place(100, 45); y != 40 {
		t.Errorf("Place(100, 45) y = %v, want 40", y)
	}
}

func TestPlace_FarApartUnchanged(t *testing.T) {
	ix := New(DefaultConfig())

	ix.Place(100, 50)
	_, y, err := ix.Place(200, 50)
	if err != nil {
		t.Fatalf("Place(200, 50) error = %v", err)
	}
	if y != 50 {
		t.Errorf("Place(200, 50) y = %v, want 50 (outside neighbor span)", y)
	}
}

func TestPlace_NearbyXConflicts(t *testing.T) {
	ix := New(DefaultConfig())

	ix.Place(100, 50)
	// 110 quantizes to a different X cell but lies within the 25-unit
	// neighbor span of 100, so the occupied Y cell still blocks it.
	_, y, _ := ix.Place(110, 50)
	if y != 45 {
		t.Errorf("Place(110, 50) y = %v, want 45", y)
	}
}

func TestPlace_HorizontalInvariance(t *testing.T) {
	ix := New(DefaultConfig())

	inputs := []float64{0, 13.7, 100, -42.5, 999.99}
	for _, in := range inputs {
		x, _, err := ix.Place(in, 50)
		if err != nil {
			t.Fatalf("Place(%v, 50) error = %v", in, err)
		}
		if x != in {
			t.Errorf("Place(%v, 50) x = %v, want input unchanged", in, x)
		}
	}
}

func TestPlace_NonFinite(t *testing.T) {
	ix := New(DefaultConfig())

	bad := [][2]float64{
		{math.NaN(), 50},
		{100, math.NaN()},
		{math.Inf(1), 50},
		{100, math.Inf(-1)},
	}
	for _, in := range bad {
		if _, _, err := ix.Place(in[0], in[1]); err == nil {
			t.Errorf("Place(%v, %v) error = nil, want non-finite rejection", in[0], in[1])
		}
	}
	if ix.Cells() != 0 {
		t.Errorf("Cells() = %d after rejected input, want 0", ix.Cells())
	}
}

func TestPlace_Determinism(t *testing.T) {
	anchors := [][2]float64{
		{100, 50}, {100, 50}, {102, 48}, {200, 50}, {98, 52}, {100, 50},
	}

	run := func() []float64 {
		ix := New(DefaultConfig())
		var out []float64
		for _, a := range anchors {
			_, y, err := ix.Place(a[0], a[1])
			if err != nil {
				t.Fatalf("Place(%v, %v) error = %v", a[0], a[1], err)
			}
			out = append(out, y)
		}
		return out
	}

	first := run()
	for i := 0; i < 5; i++ {
		got := run()
		for j := range first {
			if got[j] != first[j] {
				t.Fatalf("run %d placement %d = %v, want %v", i, j, got[j], first[j])
			}
		}
	}
}

func TestPlace_MonotonicCellGrowth(t *testing.T) {
	ix := New(DefaultConfig())

	prev := 0
	for i := 0; i < 40; i++ {
		ix.Place(100, 50)
		if ix.Cells() < prev {
			t.Fatalf("Cells() = %d after placement %d, previously %d", ix.Cells(), i, prev)
		}
		prev = ix.Cells()
	}
}

func TestPlace_IterationCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxNudges = 4
	ix := New(cfg)

	// Saturate the column so the cap is the only way out.
	for i := 0; i < 20; i++ {
		_, _, err := ix.Place(100, 50)
		if err != nil {
			t.Fatalf("Place error = %v, want lossy fallback instead of failure", err)
		}
	}

	// Every placement terminated, and the furthest any label traveled is
	// MaxNudges applications of the nudge.
	for _, ys := range ix.Snapshot() {
		for _, yy := range ys {
			if yy < 50+4*DefaultVerticalNudge {
				t.Errorf("occupied cell %d beyond iteration cap range", yy)
			}
		}
	}
}

func TestPlace_UpwardNudgeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VerticalNudge = 5
	ix := New(cfg)

	ix.Place(100, 50)
	_, y, _ := ix.Place(100, 50)
	if y != 55 {
		t.Errorf("Place with positive nudge y = %v, want 55", y)
	}
}

func TestSnapshot_Isolated(t *testing.T) {
	ix := New(DefaultConfig())
	ix.Place(100, 50)

	snap := ix.Snapshot()
	if got := snap[100]; len(got) != 1 || got[0] != 50 {
		t.Fatalf("Snapshot()[100] = %v, want [50]", got)
	}

	// Mutating the snapshot must not leak into the index.
	snap[100][0] = -999
	delete(snap, 100)
	again := ix.Snapshot()
	if got := again[100]; len(got) != 1 || got[0] != 50 {
		t.Errorf("Snapshot()[100] after mutation = %v, want [50]", got)
	}
}

func TestReset(t *testing.T) {
	ix := New(DefaultConfig())
	ix.Place(100, 50)
	ix.Place(100, 50)

	ix.Reset()

	if ix.Cells() != 0 {
		t.Errorf("Cells() after Reset = %d, want 0", ix.Cells())
	}
	_, y, _ := ix.Place(100, 50)
	if y != 50 {
		t.Errorf("Place after Reset y = %v, want 50 (stale pass must not suppress)", y)
	}
}

func TestConfig_Normalize(t *testing.T) {
	ix := New(Config{VerticalNudge: -10})
	cfg := ix.Config()

	if cfg.XRoundUnit != DefaultXRoundUnit {
		t.Errorf("XRoundUnit = %d, want default %d", cfg.XRoundUnit, DefaultXRoundUnit)
	}
	if cfg.VerticalNudge != -10 {
		t.Errorf("VerticalNudge = %d, want -10 preserved", cfg.VerticalNudge)
	}
	if cfg.XRoundBias != cfg.XRoundUnit {
		t.Errorf("XRoundBias = %d, want defaulted to round unit %d", cfg.XRoundBias, cfg.XRoundUnit)
	}
	if cfg.MaxNudges != DefaultMaxNudges {
		t.Errorf("MaxNudges = %d, want default %d", cfg.MaxNudges, DefaultMaxNudges)
	}
}
