package pipeline

import (
	"fmt"

	"github.com/matzehuels/plotdeck/pkg/chart/layout"
	"github.com/matzehuels/plotdeck/pkg/render/sink"
	"github.com/matzehuels/plotdeck/pkg/render/styles"
)

// RenderFromLayout generates output artifacts in the requested formats.
func RenderFromLayout(l layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	style, err := styles.ForName(opts.Style)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOptions(style, opts)...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, pngOptions(opts)...)
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func svgOptions(style styles.Style, opts Options) []sink.SVGOption {
	out := []sink.SVGOption{sink.WithStyle(style)}
	if opts.NoGrid {
		out = append(out, sink.WithoutGrid())
	}
	return out
}

func pngOptions(opts Options) []sink.PNGOption {
	out := []sink.PNGOption{sink.WithScale(float64(opts.Scale))}
	if opts.Style == styles.StyleMidnight {
		out = append(out, sink.WithDarkTheme())
	}
	return out
}
