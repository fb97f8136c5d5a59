// Package sink converts a computed chart layout into output artifacts.
//
// Each sink consumes the same layout.Layout: the SVG sink writes vector
// markup through a styles.Style, the PNG sink rasterises directly with a
// 2-D drawing context and system fonts, and the JSON sink serialises the
// geometry (including the label engine's occupancy snapshot) for
// programmatic consumers.
package sink
