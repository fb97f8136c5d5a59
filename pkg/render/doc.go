// Package render provides chart rendering.
//
// # Overview
//
// This package contains the rendering half of the pipeline: once a layout
// has been computed, the subpackages here turn it into output bytes.
//
//   - [sink]: output formats (SVG, PNG, JSON)
//   - [styles]: visual styles (simple, midnight)
//
// # Output Formats
//
// SVG is the primary format, produced by a hand-written emitter:
//
//	svg := sink.RenderSVG(l, sink.WithStyle(style))
//
// PNG is rasterized directly with fogleman/gg, discovering a system font
// through flopp/go-findfont:
//
//	png, err := sink.RenderPNG(l, sink.WithScale(2.0))
//
// JSON serializes the layout itself, positions and placed labels included,
// for downstream tooling:
//
//	data, err := sink.RenderJSON(l)
//
// # Styles
//
// Styles control palette, strokes, and typography without touching
// geometry. Look styles up by name:
//
//	style, err := styles.ForName("midnight")
//	svg := sink.RenderSVG(l, sink.WithStyle(style))
//
// [sink]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/render/sink
// [styles]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/render/styles
package render
