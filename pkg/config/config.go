// Package config reads chart configuration files in TOML form.
//
// A config file supplies the same knobs as the CLI flags: chart kind,
// frame size, style, output formats, and label engine tuning. Flags win
// over file values; file values win over defaults.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plotdeck/pkg/errors"
	"github.com/matzehuels/plotdeck/pkg/labels"
)

// File is the parsed shape of a plotdeck.toml.
type File struct {
	Title   string   `toml:"title"`
	Kind    string   `toml:"kind"`
	Style   string   `toml:"style"`
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	Formats []string `toml:"formats"`
	Labels  Labels   `toml:"labels"`
}

// Labels tunes the placement engine. Zero fields keep the engine defaults.
type Labels struct {
	Hide          bool `toml:"hide"`
	XRoundUnit    int  `toml:"x_round_unit"`
	YRoundUnit    int  `toml:"y_round_unit"`
	XRoundBias    int  `toml:"x_round_bias"`
	YRoundBias    int  `toml:"y_round_bias"`
	XNeighborSpan int  `toml:"x_neighbor_span"`
	YNeighborSpan int  `toml:"y_neighbor_span"`
	VerticalNudge int  `toml:"vertical_nudge"`
	MaxNudges     int  `toml:"max_nudges"`
}

// Engine converts the label tuning section into an engine config.
func (l Labels) Engine() labels.Config {
	return labels.Config{
		XRoundUnit:    l.XRoundUnit,
		YRoundUnit:    l.YRoundUnit,
		XRoundBias:    l.XRoundBias,
		YRoundBias:    l.YRoundBias,
		XNeighborSpan: l.XNeighborSpan,
		YNeighborSpan: l.YNeighborSpan,
		VerticalNudge: l.VerticalNudge,
		MaxNudges:     l.MaxNudges,
	}
}

// Load reads and parses a TOML config file.
func Load(path string) (*File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return &f, nil
}
