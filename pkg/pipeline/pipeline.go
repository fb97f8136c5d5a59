// Package pipeline provides the core chart pipeline for plotdeck.
//
// This package implements the complete parse → layout → render pipeline that
// can be used by CLI and server components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read a dataset (CSV, JSON, YAML) into a chart
//  2. Layout: Scale data into device space and place value labels
//  3. Render: Generate output in various formats (SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "latency.csv",
//	    Kind:    "line",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Parse only
//	ch, err := runner.Parse(ctx, opts)
//
//	// Layout with existing chart
//	l, err := runner.ComputeLayout(ctx, ch, opts)
//
//	// Render with existing layout
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotdeck/pkg/cache"
	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/chart/layout"
	"github.com/matzehuels/plotdeck/pkg/labels"
	"github.com/matzehuels/plotdeck/pkg/render/styles"
)

// Defaults shared by CLI and server.
const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 600

	// DefaultScale is the default PNG supersampling factor.
	DefaultScale = 2
)

// DefaultKind is the default chart kind.
const DefaultKind = string(chart.KindLine)

// DefaultStyle is the default visual style.
const DefaultStyle = styles.StyleSimple

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// Options contains all configuration for the chart pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Parse options. Input names a dataset file; Data carries inline
	// dataset content (used by the API) with Format naming its syntax.
	Input   string `json:"input,omitempty"`
	Data    string `json:"data,omitempty"`
	Format  string `json:"format,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`

	// Layout options. Title and Kind override whatever the dataset
	// carries when non-empty.
	Title      string        `json:"title,omitempty"`
	Kind       string        `json:"kind,omitempty"`
	Width      int           `json:"width,omitempty"`
	Height     int           `json:"height,omitempty"`
	HideLabels bool          `json:"hide_labels,omitempty"`
	Engine     labels.Config `json:"engine,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Scale   int      `json:"scale,omitempty"`
	NoGrid  bool     `json:"no_grid,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Chart is the parsed dataset.
	Chart *chart.Chart

	// ChartHash is the content hash of the parsed chart.
	ChartHash string

	// Layout contains device-space marks, labels, and the occupancy
	// snapshot from the label placement pass.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount  int
	PointCount   int
	LabelCount   int
	NudgedLabels int
	ParseTime    time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit  bool // Whether the parsed chart came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !styles.ValidStyles[style] {
		return fmt.Errorf("invalid style: %q (must be one of: simple, midnight)", style)
	}
	return nil
}

// ValidateKind checks that a chart kind is valid.
func ValidateKind(kind string) error {
	if !chart.ValidKinds[chart.Kind(kind)] {
		return fmt.Errorf("invalid kind: %q (must be one of: line, scatter, bar)", kind)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.Input == "" && o.Data == "" {
		return fmt.Errorf("input or data is required")
	}
	if o.Data != "" && o.Format == "" {
		return fmt.Errorf("format is required with inline data")
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
// An empty Kind is allowed: the dataset's own kind applies.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Kind != "" {
		return ValidateKind(o.Kind)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// DatasetKeyOpts returns cache key options for dataset parsing.
func (o *Options) DatasetKeyOpts() cache.DatasetKeyOpts {
	return cache.DatasetKeyOpts{
		Format: o.Format,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Kind:       o.Kind,
		Width:      o.Width,
		Height:     o.Height,
		HideLabels: o.HideLabels,
		Engine:     o.Engine,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	scale := o.Scale
	if format != FormatPNG {
		scale = 0 // Scale only affects PNG output
	}
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Scale:  scale,
	}
}
