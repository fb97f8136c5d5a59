package dataset

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/errors"
)

// yamlChart mirrors chart.Chart with yaml tags; the model itself only
// carries json tags.
type yamlChart struct {
	Title  string       `yaml:"title"`
	Kind   string       `yaml:"kind"`
	Series []yamlSeries `yaml:"series"`
}

type yamlSeries struct {
	Name   string      `yaml:"name"`
	Points []yamlPoint `yaml:"points"`
}

type yamlPoint struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Label string  `yaml:"label"`
}

// ReadYAML parses a full chart document in YAML form.
func ReadYAML(r io.Reader) (*chart.Chart, error) {
	var doc yamlChart
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode YAML chart")
	}

	c := &chart.Chart{Title: doc.Title, Kind: chart.Kind(doc.Kind)}
	for _, s := range doc.Series {
		series := chart.Series{Name: s.Name, Points: make([]chart.Point, 0, len(s.Points))}
		for _, p := range s.Points {
			series.Points = append(series.Points, chart.Point{X: p.X, Y: p.Y, Label: p.Label})
		}
		c.Series = append(c.Series, series)
	}
	return finish(c)
}
