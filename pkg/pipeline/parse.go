package pipeline

import (
	"bytes"
	"context"
	"net/url"
	"path"
	"strings"

	"github.com/matzehuels/plotdeck/pkg/chart"
	"github.com/matzehuels/plotdeck/pkg/dataset"
	"github.com/matzehuels/plotdeck/pkg/httputil"
)

// Parse reads the dataset named by opts into a chart.
// Title and Kind overrides from opts are applied after parsing so that a
// dataset's own metadata loses to explicit flags.
func Parse(ctx context.Context, opts Options) (*chart.Chart, error) {
	ch, err := readDataset(ctx, opts)
	if err != nil {
		return nil, err
	}

	if opts.Title != "" {
		ch.Title = opts.Title
	}
	if opts.Kind != "" {
		ch.Kind = chart.Kind(opts.Kind)
	}
	if err := ch.Validate(); err != nil {
		return nil, err
	}
	return ch, nil
}

func readDataset(ctx context.Context, opts Options) (*chart.Chart, error) {
	if opts.Data != "" {
		ext := opts.Format
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		return dataset.Read(strings.NewReader(opts.Data), ext, "series")
	}
	if httputil.IsURL(opts.Input) {
		return readRemote(ctx, opts.Input)
	}
	return dataset.Load(opts.Input)
}

// readRemote fetches a dataset over HTTP and parses it with the format
// implied by the URL path extension.
func readRemote(ctx context.Context, rawURL string) (*chart.Chart, error) {
	data, err := httputil.NewClient(nil).Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	ext, name := remoteExt(rawURL)
	return dataset.Read(bytes.NewReader(data), ext, name)
}

func remoteExt(rawURL string) (ext, name string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return path.Ext(rawURL), "series"
	}
	base := path.Base(u.Path)
	ext = path.Ext(base)
	name = strings.TrimSuffix(base, ext)
	if name == "" || name == "." || name == "/" {
		name = "series"
	}
	return ext, name
}

// parseSource names the dataset origin for logs and hooks.
func parseSource(opts Options) string {
	if opts.Input != "" {
		return opts.Input
	}
	return "inline"
}
