package dataset

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/errors"
)

// ReadJSON parses a full chart document: title, kind, and series.
func ReadJSON(r io.Reader) (*chart.Chart, error) {
	var c chart.Chart
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode JSON chart")
	}
	return finish(&c)
}
