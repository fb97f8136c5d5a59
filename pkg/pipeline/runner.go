package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotdeck/pkg/cache"
	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/chart/layout"
	"github.com/matzehuels/plotdeck/pkg/httputil"
	"github.com/matzehuels/plotdeck/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	ch, parseHit, err := r.ParseWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Chart = ch
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.SeriesCount = len(ch.Series)
	result.Stats.PointCount = ch.PointCount()
	result.CacheInfo.ParseHit = parseHit

	// Compute chart hash for cache keys and API responses
	if chartData, err := json.Marshal(ch); err == nil {
		result.ChartHash = cache.Hash(chartData)
	}

	r.Logger.Info("parsed dataset",
		"series", len(ch.Series),
		"points", ch.PointCount(),
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, ch, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.LabelCount = l.LabelCount()
	result.Stats.NudgedLabels = l.NudgedLabels()
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"labels", l.LabelCount(),
		"nudged", l.NudgedLabels(),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ParseWithCacheInfo reads the dataset with caching and returns cache hit info.
func (r *Runner) ParseWithCacheInfo(ctx context.Context, opts Options) (*chart.Chart, bool, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	source := parseSource(opts)
	observability.Pipeline().OnParseStart(ctx, opts.Format, source)
	start := time.Now()

	// Cache key derives from the raw content so edits invalidate entries.
	cacheKey, keyOK := r.datasetCacheKey(opts)

	// Try cache first (unless refresh requested)
	if keyOK && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "dataset")
			var ch chart.Chart
			if err := json.Unmarshal(data, &ch); err == nil {
				observability.Pipeline().OnParseComplete(ctx, opts.Format, source, ch.PointCount(), time.Since(start), nil)
				return &ch, true, nil
			}
		} else {
			observability.Cache().OnCacheMiss(ctx, "dataset")
		}
	}

	ch, err := Parse(ctx, opts)
	points := 0
	if ch != nil {
		points = ch.PointCount()
	}
	observability.Pipeline().OnParseComplete(ctx, opts.Format, source, points, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if keyOK {
		if data, err := json.Marshal(ch); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDataset)
			observability.Cache().OnCacheSet(ctx, "dataset", len(data))
		}
	}

	return ch, false, nil
}

// Parse is a convenience wrapper that discards the cache hit info.
func (r *Runner) Parse(ctx context.Context, opts Options) (*chart.Chart, error) {
	ch, _, err := r.ParseWithCacheInfo(ctx, opts)
	return ch, err
}

// datasetCacheKey derives the parse-stage cache key from the raw input
// bytes, or from the URL for remote datasets. The boolean is false when a
// local input can't be read, in which case parsing proceeds uncached and
// reports the real error.
func (r *Runner) datasetCacheKey(opts Options) (string, bool) {
	var raw []byte
	switch {
	case opts.Data != "":
		raw = []byte(opts.Data)
	case httputil.IsURL(opts.Input):
		raw = []byte(opts.Input)
	default:
		data, err := os.ReadFile(opts.Input)
		if err != nil {
			return "", false
		}
		raw = data
	}
	return r.Keyer.DatasetKey(cache.Hash(raw), opts.DatasetKeyOpts()), true
}

// ComputeLayoutWithCacheInfo computes a layout with caching and returns cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, ch *chart.Chart, opts Options) (layout.Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, false, err
	}
	r.applyLogger(&opts)

	observability.Pipeline().OnLayoutStart(ctx, string(ch.Kind), ch.PointCount())
	start := time.Now()

	// Compute cache key
	chartData, _ := json.Marshal(ch)
	chartHash := cache.Hash(chartData)
	cacheKey := r.Keyer.LayoutKey(chartHash, opts.LayoutKeyOpts())

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "layout")
		var cached layout.Layout
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Pipeline().OnLayoutComplete(ctx, string(ch.Kind), cached.NudgedLabels(), time.Since(start), nil)
			return cached, true, nil
		}
		// If deserialization fails, fall through to recompute
	} else {
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	l, err := ComputeLayout(ch, opts)
	observability.Pipeline().OnLayoutComplete(ctx, string(ch.Kind), l.NudgedLabels(), time.Since(start), err)
	if err != nil {
		return layout.Layout{}, false, err
	}

	if data, err := json.Marshal(l); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return l, false, nil
}

// ComputeLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, ch *chart.Chart, opts Options) (layout.Layout, error) {
	l, _, err := r.ComputeLayoutWithCacheInfo(ctx, ch, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	// Compute cache key from layout data
	layoutData, err := json.Marshal(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		} else {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
		return artifacts, true, nil
	}

	rendered, err := RenderFromLayout(l, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
