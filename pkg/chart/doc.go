// Package chart defines the chart data model: series of data points, chart
// kinds, and the linear scales that map data space into device space.
//
// The model is renderer-agnostic. Geometry (where a point lands on the
// canvas) is computed by chart/layout; visual appearance lives in
// render/styles. This package only knows about data.
package chart
