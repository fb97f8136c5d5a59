package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotdeck/pkg/config"
	"github.com/matzehuels/plotdeck/pkg/labels"
	"github.com/matzehuels/plotdeck/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file path (or base path for multiple formats)
	formats    []string
	style      string
	kind       string
	title      string
	width      int
	height     int
	scale      int
	noLabels   bool
	noGrid     bool
	noCache    bool
	refresh    bool
	configPath string

	// Label engine tuning
	nudge     int
	maxNudges int
	xUnit     int
	yUnit     int
	xSpan     int
	ySpan     int
}

// renderCommand creates the render command for generating chart artifacts.
//
// Default settings:
//   - style: simple
//   - width: 800px, height: 600px
//   - formats: svg
//   - label engine: built-in defaults (5px grid, 25/20px window, -5px nudge)
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render a dataset to SVG, PNG, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple (default), midnight")
	cmd.Flags().StringVar(&opts.kind, "kind", "", "chart kind override: line, scatter, bar")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title override")
	cmd.Flags().IntVar(&opts.width, "width", 0, "frame width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "frame height")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "PNG supersampling factor")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "skip value labels entirely")
	cmd.Flags().BoolVar(&opts.noGrid, "no-grid", false, "skip grid lines in SVG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the pipeline cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached datasets")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file with chart settings")

	cmd.Flags().IntVar(&opts.nudge, "nudge", 0, "vertical label nudge in px (negative moves down)")
	cmd.Flags().IntVar(&opts.maxNudges, "max-nudges", 0, "cap on nudge iterations per label")
	cmd.Flags().IntVar(&opts.xUnit, "x-unit", 0, "horizontal label grid unit")
	cmd.Flags().IntVar(&opts.yUnit, "y-unit", 0, "vertical label grid unit")
	cmd.Flags().IntVar(&opts.xSpan, "x-span", 0, "horizontal collision window")
	cmd.Flags().IntVar(&opts.ySpan, "y-span", 0, "vertical collision window")

	return cmd
}

// runRender executes the pipeline for a dataset file and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	pOpts, err := buildPipelineOptions(input, opts)
	if err != nil {
		return err
	}
	pOpts.Logger = logger

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s", input))
	spin.Start()

	result, err := runner.Execute(ctx, pOpts)
	spin.Stop()
	if err != nil {
		if spin.Cancelled() {
			return ctx.Err()
		}
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(result.Artifacts)))

	printStats(result.Stats.PointCount, result.Stats.LabelCount, result.Stats.NudgedLabels,
		result.CacheInfo.RenderHit)

	for _, format := range pOpts.Formats {
		path := outputPath(opts.output, input, format, len(pOpts.Formats))
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// buildPipelineOptions merges config-file settings and flags into pipeline
// options. Flags win over config values, which win over dataset metadata.
func buildPipelineOptions(input string, opts *renderOpts) (pipeline.Options, error) {
	pOpts := pipeline.Options{
		Input:      input,
		Title:      opts.title,
		Kind:       opts.kind,
		Width:      opts.width,
		Height:     opts.height,
		Formats:    opts.formats,
		Style:      opts.style,
		Scale:      opts.scale,
		HideLabels: opts.noLabels,
		NoGrid:     opts.noGrid,
		Refresh:    opts.refresh,
		Engine:     engineConfig(opts),
	}

	if opts.configPath == "" {
		return pOpts, nil
	}

	file, err := config.Load(opts.configPath)
	if err != nil {
		return pipeline.Options{}, err
	}
	applyConfigDefaults(&pOpts, file, opts)
	return pOpts, nil
}

// applyConfigDefaults fills option fields the flags left unset.
func applyConfigDefaults(pOpts *pipeline.Options, file *config.File, opts *renderOpts) {
	if pOpts.Title == "" {
		pOpts.Title = file.Title
	}
	if pOpts.Kind == "" {
		pOpts.Kind = file.Kind
	}
	if pOpts.Style == "" {
		pOpts.Style = file.Style
	}
	if pOpts.Width == 0 {
		pOpts.Width = file.Width
	}
	if pOpts.Height == 0 {
		pOpts.Height = file.Height
	}
	if len(file.Formats) > 0 && len(opts.formats) == 1 && opts.formats[0] == pipeline.FormatSVG {
		pOpts.Formats = file.Formats
	}
	if !pOpts.HideLabels {
		pOpts.HideLabels = file.Labels.Hide
	}

	zero := labels.Config{}
	if pOpts.Engine == zero {
		pOpts.Engine = file.Labels.Engine()
	}
}

// engineConfig builds the label engine config from tuning flags.
// Unset flags leave zero fields, which the engine fills with defaults.
func engineConfig(opts *renderOpts) labels.Config {
	return labels.Config{
		XRoundUnit:    opts.xUnit,
		YRoundUnit:    opts.yUnit,
		XNeighborSpan: opts.xSpan,
		YNeighborSpan: opts.ySpan,
		VerticalNudge: opts.nudge,
		MaxNudges:     opts.maxNudges,
	}
}

// outputPath derives the file path for one rendered format.
// With a single format, --output is used verbatim when set. With multiple
// formats, --output acts as a base path and the format extension is appended.
func outputPath(output, input, format string, formatCount int) string {
	if output != "" {
		if formatCount == 1 {
			return output
		}
		ext := filepath.Ext(output)
		return strings.TrimSuffix(output, ext) + "." + format
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}
