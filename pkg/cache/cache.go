// Package cache provides pluggable caching for pipeline stages.
//
// Caches store opaque byte payloads under string keys with optional
// expiration. Keys are generated by a Keyer so that every pipeline stage
// derives its key from the exact inputs that influence its output.
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/plotdeck/pkg/labels"
)

// Cache is the storage interface shared by all backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The boolean reports whether the key was found;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// DatasetKeyOpts captures the inputs that affect dataset parsing.
type DatasetKeyOpts struct {
	Format string `json:"format"`
}

// LayoutKeyOpts captures the inputs that affect layout computation.
type LayoutKeyOpts struct {
	Kind       string        `json:"kind"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	HideLabels bool          `json:"hide_labels"`
	Engine     labels.Config `json:"engine"`
}

// ArtifactKeyOpts captures the inputs that affect artifact rendering.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Style  string `json:"style"`
	Scale  int    `json:"scale"`
}

// Keyer generates cache keys for pipeline stages.
type Keyer interface {
	// DatasetKey generates a key for a parsed dataset, derived from the
	// raw input bytes.
	DatasetKey(contentHash string, opts DatasetKeyOpts) string

	// LayoutKey generates a key for a computed layout.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates versioned, hash-based keys.
// Bump a stage version when its output format changes to invalidate
// stale entries without flushing the whole cache.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// Key version prefixes, one per pipeline stage.
const (
	datasetKeyVersion  = "dataset:v1"
	layoutKeyVersion   = "layout:v1"
	artifactKeyVersion = "artifact:v1"
)

// Stage TTLs. Parsed datasets and layouts are cheap to recompute, so they
// expire sooner than rendered artifacts.
const (
	TTLDataset  = 1 * time.Hour
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// DatasetKey generates a key for dataset parsing results.
func (k *DefaultKeyer) DatasetKey(contentHash string, opts DatasetKeyOpts) string {
	return hashKey(datasetKeyVersion, contentHash, opts)
}

// LayoutKey generates a key for layout results.
func (k *DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey(layoutKeyVersion, datasetHash, opts)
}

// ArtifactKey generates a key for rendered artifacts.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey(artifactKeyVersion, layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
