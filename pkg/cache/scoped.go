package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The render server uses this to keep per-user entries apart from the
// shared pool of public chart artifacts.
//
// Example usage:
//
//	// User-specific keys for private datasets
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Global keys for shared charts
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DatasetKey generates a prefixed key for dataset caching.
func (k *ScopedKeyer) DatasetKey(contentHash string, opts DatasetKeyOpts) string {
	return k.prefix + k.inner.DatasetKey(contentHash, opts)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(datasetHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}

// Ensure ScopedKeyer implements Keyer.
var _ Keyer = (*ScopedKeyer)(nil)
