// Package dataset reads chart data from CSV, JSON, and YAML files.
//
// CSV files carry bare point data (optionally tagged with a series name per
// row); JSON and YAML documents carry the full chart shape including title
// and kind. Load sniffs the format from the file extension.
package dataset

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/errors"
)

// Load reads a chart from path, dispatching on the file extension.
// Supported extensions: .csv, .json, .yaml, .yml.
func Load(path string) (*chart.Chart, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "open %s", path)
	}
	defer f.Close()

	return Read(f, filepath.Ext(path), seriesNameFromPath(path))
}

// Read parses a chart from r in the format implied by ext. fallbackName
// names the series for formats that don't carry one (CSV without a series
// column).
func Read(r io.Reader, ext, fallbackName string) (*chart.Chart, error) {
	switch strings.ToLower(ext) {
	case ".csv":
		return ReadCSV(r, fallbackName)
	case ".json":
		return ReadJSON(r)
	case ".yaml", ".yml":
		return ReadYAML(r)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported dataset format %q", ext)
	}
}

// seriesNameFromPath derives a series name from the file basename.
func seriesNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// finish applies defaults shared by all readers and validates the result.
func finish(c *chart.Chart) (*chart.Chart, error) {
	if c.Kind == "" {
		c.Kind = chart.KindLine
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
