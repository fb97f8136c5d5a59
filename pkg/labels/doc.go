// Package labels implements the collision-avoidance engine that positions
// value labels next to chart marks without visual overlap.
//
// The engine is a spatial occupancy index over a coarse grid. Callers feed it
// candidate anchor positions in device coordinates, one label at a time and in
// draw order; each call returns an adjusted position whose grid cell is not
// claimed by any previously placed label. Adjustment is purely local: the
// horizontal coordinate never changes, and the vertical coordinate is nudged
// by a fixed displacement until the candidate cell is clear. There is no
// global optimization and no revisiting of earlier placements.
//
// # Grid model
//
// Continuous coordinates are quantized to integer cells with a resolution of
// Config.XRoundUnit / Config.YRoundUnit device units. Two coordinates that
// quantize to the same cell are considered to be at the same place for
// collision purposes. The occupancy index only grows during a layout pass;
// create a fresh Index (or call Reset) for every pass, or placements from a
// stale pass will suppress placements in the new one.
//
// # Usage
//
//	ix := labels.New(labels.DefaultConfig())
//	for _, p := range points {
//	    x, y, err := ix.Place(p.X, p.Y)
//	    if err != nil {
//	        return err
//	    }
//	    drawText(p.Text, x, y)
//	}
//
// An Index is not safe for concurrent use. Place is a read-modify-write
// against shared state; one index belongs to one rendering pass on one
// goroutine, or callers must provide external locking.
package labels
