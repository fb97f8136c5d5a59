// Package httputil fetches remote datasets over HTTP.
//
// The render pipeline accepts http(s) URLs wherever it accepts a dataset
// path. Client wraps the standard library HTTP client with a request
// timeout, retry-with-backoff on transient failures, and error codes that
// the rest of the pipeline understands.
package httputil

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/plotdeck/pkg/cache"
	"github.com/matzehuels/plotdeck/pkg/errors"
)

const fetchTimeout = 10 * time.Second

// IsURL reports whether s names a remote dataset rather than a local file.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Client fetches remote datasets. The zero value is not usable; construct
// with NewClient.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with a standard timeout and default headers.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string) *Client {
	return &Client{
		http:    &http.Client{Timeout: fetchTimeout},
		headers: headers,
	}
}

// Fetch performs an HTTP GET and returns the response body. Transport
// errors and 5xx responses are retried with exponential backoff; a 404
// maps to FILE_NOT_FOUND so callers treat missing remote datasets the
// same as missing local files.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	var data []byte
	err := cache.RetryWithBackoff(ctx, func() error {
		var fetchErr error
		data, fetchErr = c.fetch(ctx, url)
		return fetchErr
	})
	return data, err
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "request %s", url)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &cache.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", url)}
	}
	defer resp.Body.Close()

	if err := checkStatus(url, resp.StatusCode); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &cache.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "read %s", url)}
	}
	return data, nil
}

func checkStatus(url string, code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeFileNotFound, "dataset %s", url)
	case code >= 500:
		return &cache.RetryableError{Err: errors.New(errors.ErrCodeNetwork, "fetch %s: status %d", url, code)}
	default:
		return errors.New(errors.ErrCodeNetwork, "fetch %s: status %d", url, code)
	}
}
