package labels

import (
	"math"
	"sort"

	"github.com/matzehuels/plotdeck/pkg/errors"
)

// Default engine constants: a 5-unit grid, a 25x20 unit conflict window,
// and an upward 5-unit nudge. Sized for 11pt value labels.
const (
	DefaultXRoundUnit    = 5
	DefaultYRoundUnit    = 5
	DefaultXNeighborSpan = 25
	DefaultYNeighborSpan = 20
	DefaultVerticalNudge = -5

	// DefaultMaxNudges caps the resolution loop. With the default nudge of 5
	// units this allows a label to travel 320 units before the engine gives
	// up and accepts the current position (a slightly overlapping label, not
	// an error).
	DefaultMaxNudges = 64
)

// Config holds the named parameters of the placement engine. All values are
// in device units. The zero value is not usable; start from DefaultConfig.
type Config struct {
	// XRoundUnit and YRoundUnit set the quantization granularity per axis.
	XRoundUnit int
	YRoundUnit int

	// XRoundBias and YRoundBias set the remainder threshold at which
	// quantization refines a coordinate into the upper sub-cell of its
	// decade. They are distinct parameters from the round units but default
	// to the same values; nothing in the observed behavior requires them to
	// differ.
	XRoundBias int
	YRoundBias int

	// XNeighborSpan and YNeighborSpan are the half-widths of the
	// neighborhood scanned for a conflict around a candidate cell.
	XNeighborSpan int
	YNeighborSpan int

	// VerticalNudge is the signed displacement applied to a conflicting
	// label. Negative values move the label up in canvas coordinates.
	VerticalNudge int

	// MaxNudges bounds the resolution loop. When exceeded, Place accepts
	// the current position even if it still conflicts.
	MaxNudges int
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		XRoundUnit:    DefaultXRoundUnit,
		YRoundUnit:    DefaultYRoundUnit,
		XRoundBias:    DefaultXRoundUnit,
		YRoundBias:    DefaultYRoundUnit,
		XNeighborSpan: DefaultXNeighborSpan,
		YNeighborSpan: DefaultYNeighborSpan,
		VerticalNudge: DefaultVerticalNudge,
		MaxNudges:     DefaultMaxNudges,
	}
}

// normalize fills unset fields with defaults so that a partially specified
// Config (e.g. from a TOML file that only tunes the nudge) stays coherent.
func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.XRoundUnit <= 0 {
		c.XRoundUnit = d.XRoundUnit
	}
	if c.YRoundUnit <= 0 {
		c.YRoundUnit = d.YRoundUnit
	}
	if c.XRoundBias <= 0 {
		c.XRoundBias = c.XRoundUnit
	}
	if c.YRoundBias <= 0 {
		c.YRoundBias = c.YRoundUnit
	}
	if c.XNeighborSpan <= 0 {
		c.XNeighborSpan = d.XNeighborSpan
	}
	if c.YNeighborSpan <= 0 {
		c.YNeighborSpan = d.YNeighborSpan
	}
	if c.VerticalNudge == 0 {
		c.VerticalNudge = d.VerticalNudge
	}
	if c.MaxNudges <= 0 {
		c.MaxNudges = d.MaxNudges
	}
	return c
}

// Index is the occupancy structure for one label-layout pass. It maps
// quantized X cells to the set of quantized Y cells already claimed by
// placed labels. Not safe for concurrent use.
type Index struct {
	cfg      Config
	occupied map[int]map[int]struct{}
	cells    int
	nudged   int
}

// New creates an empty Index with the given configuration. Zero-valued
// Config fields fall back to the defaults.
func New(cfg Config) *Index {
	return &Index{
		cfg:      cfg.normalize(),
		occupied: make(map[int]map[int]struct{}),
	}
}

// Config returns the normalized configuration the index runs with.
func (ix *Index) Config() Config {
	return ix.cfg
}

// Place accepts a candidate anchor position and returns the adjusted
// position for the label. The X coordinate is returned unchanged; the Y
// coordinate is moved by zero or more applications of the configured nudge,
// the smallest number that lands the label on an unclaimed grid cell. The
// final cell is recorded in the index before returning.
//
// Non-finite coordinates fail fast with ErrCodeInvalidCoordinate since
// quantization is undefined for them.
func (ix *Index) Place(x, y float64) (float64, float64, error) {
	if err := errors.ValidateFinite("x", x); err != nil {
		return 0, 0, err
	}
	if err := errors.ValidateFinite("y", y); err != nil {
		return 0, 0, err
	}

	qx := quantize(x, ix.cfg.XRoundUnit, ix.cfg.XRoundBias)
	qy := quantize(y, ix.cfg.YRoundUnit, ix.cfg.YRoundBias)

	for i := 0; i < ix.cfg.MaxNudges; i++ {
		off := ix.findConflict(qx, qy)
		if off == 0 {
			break
		}
		// The nudge moves both the continuous coordinate handed back to the
		// caller and the quantized probe cell, keeping the two in lockstep.
		y += float64(off)
		qy += off
		ix.nudged++
	}

	ys, ok := ix.occupied[qx]
	if !ok {
		ys = make(map[int]struct{})
		ix.occupied[qx] = ys
	}
	if _, claimed := ys[qy]; !claimed {
		ys[qy] = struct{}{}
		ix.cells++
	}

	return x, y, nil
}

// findConflict scans the neighborhood of the candidate cell and returns the
// vertical nudge to apply if a previously placed label blocks it, or 0 if
// the cell is clear.
//
// The horizontal scan covers every X cell within XNeighborSpan of qx. The
// vertical scan covers only the half-window on the nudge side of qy: cells
// the probe has already escaped (behind the nudge direction) cannot be
// re-entered, so they never block a placement. The scan is bounded and
// independent of how many labels have been placed.
func (ix *Index) findConflict(qx, qy int) int {
	step := ix.cfg.YRoundUnit
	if ix.cfg.VerticalNudge > 0 {
		step = -step
	}

	for xx := qx - ix.cfg.XNeighborSpan; xx <= qx+ix.cfg.XNeighborSpan; xx += ix.cfg.XRoundUnit {
		ys, ok := ix.occupied[xx]
		if !ok || len(ys) == 0 {
			continue
		}
		for i := 0; i*ix.cfg.YRoundUnit <= ix.cfg.YNeighborSpan; i++ {
			if _, claimed := ys[qy-i*step]; claimed {
				return ix.cfg.VerticalNudge
			}
		}
	}
	return 0
}

// Cells returns the number of distinct occupied grid cells. The count never
// decreases over the lifetime of the index.
func (ix *Index) Cells() int {
	return ix.cells
}

// Nudged returns the total number of nudges applied across all placements,
// which is a useful density signal for pipeline stats.
func (ix *Index) Nudged() int {
	return ix.nudged
}

// Snapshot returns a copy of the occupancy structure for diagnostics: a
// mapping from quantized X cell to the sorted list of claimed Y cells.
// Mutating the result has no effect on the index.
func (ix *Index) Snapshot() map[int][]int {
	snap := make(map[int][]int, len(ix.occupied))
	for xx, ys := range ix.occupied {
		cells := make([]int, 0, len(ys))
		for yy := range ys {
			cells = append(cells, yy)
		}
		sort.Ints(cells)
		snap[xx] = cells
	}
	return snap
}

// Reset clears all occupancy so the index can serve a new layout pass.
// Equivalent to New with the same configuration.
func (ix *Index) Reset() {
	ix.occupied = make(map[int]map[int]struct{})
	ix.cells = 0
	ix.nudged = 0
}

// quantize maps a continuous coordinate to its integer grid cell. The cell
// base is the coordinate's decade (truncated toward zero); a remainder whose
// magnitude reaches bias refines the cell by one round unit away from zero.
// This buckets each decade into two sub-cells of unit resolution rather
// than ten.
//
//	quantize(12, 5, 5) == 10   // remainder 2 below bias
//	quantize(18, 5, 5) == 15   // remainder 8 reaches bias
//	quantize(-12, 5, 5) == -10 // mirrors the positive case
func quantize(v float64, unit, bias int) int {
	cell := int(math.Trunc(v/10) * 10)
	offset := math.Mod(v, 10)
	switch {
	case offset >= float64(bias):
		cell += unit
	case offset <= -float64(bias):
		cell -= unit
	}
	return cell
}
