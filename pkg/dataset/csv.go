package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/errors"
)

// ReadCSV parses point data from CSV. The first row is a header naming the
// columns; recognized names are "series", "x", "y", and "label" in any
// order. Without a "series" column all points land in one series named
// fallbackName. Rows are kept in file order, which is the order labels are
// later placed in.
func ReadCSV(r io.Reader, fallbackName string) (*chart.Chart, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "read CSV header")
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	xCol, ok := cols["x"]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "CSV header missing %q column", "x")
	}
	yCol, ok := cols["y"]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "CSV header missing %q column", "y")
	}
	seriesCol, hasSeries := cols["series"]
	labelCol, hasLabel := cols["label"]

	c := &chart.Chart{}
	// byName tracks series order of first appearance.
	byName := map[string]int{}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "read CSV line %d", line)
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(rec[xCol]), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "line %d: bad x value %q", line, rec[xCol])
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[yCol]), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "line %d: bad y value %q", line, rec[yCol])
		}

		name := fallbackName
		if hasSeries {
			name = strings.TrimSpace(rec[seriesCol])
		}
		p := chart.Point{X: x, Y: y}
		if hasLabel {
			p.Label = strings.TrimSpace(rec[labelCol])
		}

		idx, ok := byName[name]
		if !ok {
			idx = len(c.Series)
			byName[name] = idx
			c.Series = append(c.Series, chart.Series{Name: name})
		}
		c.Series[idx].Points = append(c.Series[idx].Points, p)
	}

	return finish(c)
}
