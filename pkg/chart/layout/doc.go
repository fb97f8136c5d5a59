// Package layout turns a chart's data model into device-space geometry:
// mark positions, axis ticks, and collision-free label placements.
//
// Build runs one label-layout pass per call. It owns a fresh labels.Index
// for the duration of the pass, feeds it every label anchor in draw order,
// and records the adjusted positions in the returned Layout. The index
// never outlives the pass, so placements from one render can't suppress
// placements in the next.
package layout
