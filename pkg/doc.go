// Package pkg provides the core libraries for plotdeck chart rendering.
//
// # Overview
//
// Plotdeck renders line, scatter, and bar charts in which every data point
// carries a value label; a placement engine nudges labels apart so dense
// regions stay readable. The pkg directory is organized into four areas:
//
//  1. Domain logic - chart model, label placement, layout ([chart], [labels])
//  2. Input/output - dataset parsing and rendering ([dataset], [render])
//  3. Infrastructure - caching, persistence, remote fetch ([cache], [store], [httputil])
//  4. Orchestration - the parse → layout → render pipeline ([pipeline])
//
// # Architecture
//
// The typical data flow:
//
//	CSV/JSON/YAML dataset (local file, URL, or inline)
//	         ↓
//	    [dataset] package (parse into the chart model)
//	         ↓
//	    [chart/layout] package (scales, ticks, label placement via [labels])
//	         ↓
//	    [render/sink] package (SVG / PNG / JSON output)
//
// # Quick Start
//
// Render a chart from a dataset file:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/plotdeck/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Input:   "latency.csv",
//	    Formats: []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
//
// Or drive the stages directly:
//
//	ch, _ := dataset.Load("latency.csv")
//	l, _ := layout.Build(ch, layout.Options{FrameWidth: 800, FrameHeight: 600})
//	svg := sink.RenderSVG(l)
//
// # Main Packages
//
// [labels] - The label placement engine. Maintains an occupancy index of
// quantized label cells and resolves collisions by nudging labels along
// the y axis until they clear their neighborhood.
//
// [chart] - The chart data model (charts, series, points) plus axis scales
// and value formatting.
//
// [chart/layout] - The layout pass: maps data coordinates to frame
// coordinates, derives axis ticks, and runs label placement.
//
// [dataset] - Dataset readers for CSV, JSON, and YAML with format sniffing
// by extension.
//
// [render/styles] - Visual styles (simple, midnight) controlling colors,
// strokes, and typography.
//
// [render/sink] - Output sinks: a hand-written SVG emitter, a raster PNG
// sink built on fogleman/gg, and JSON layout serialization.
//
// [pipeline] - Orchestration of parse → layout → render with per-stage
// caching, used by the CLI and the HTTP server so all entry points behave
// identically.
//
// [cache] - Cache interface with file, Redis, and null implementations,
// content-hash key derivation, and retry with backoff.
//
// [store] - Persistence for rendered chart records with in-memory and
// MongoDB implementations.
//
// [httputil] - HTTP fetching of remote datasets.
//
// [config] - TOML chart configuration files merged under command-line flags.
//
// [errors] - Structured error codes and input validation shared by all
// surfaces.
//
// [observability] - Hook interfaces for pipeline, cache, and server
// instrumentation with no-op defaults.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/labels/...   # Specific package
//	go test -run Example       # Examples only
//
// [labels]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/labels
// [chart]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/chart
// [chart/layout]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/chart/layout
// [dataset]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/dataset
// [render]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/render
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/render/styles
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/store
// [httputil]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/httputil
// [config]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/plotdeck/pkg/observability
package pkg
