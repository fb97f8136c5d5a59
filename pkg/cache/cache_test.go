package cache

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "layout:v1:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get should miss before Set")
	}

	// Round-trip
	payload := []byte(`{"labels":3}`)
	if err := c.Set(ctx, "layout:v1:abc", payload, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "layout:v1:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get should hit after Set")
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("Get = %q, want %q", data, payload)
	}

	// Delete
	if err := c.Delete(ctx, "layout:v1:abc"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "layout:v1:abc")
	if hit {
		t.Error("Get should miss after Delete")
	}

	// Deleting a missing key is fine
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete missing key error: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Negative TTL is already in the past
	if err := c.Set(ctx, "stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "stale")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Expired entry should be a miss")
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// DatasetKey should include options in hash
	dk1 := k.DatasetKey("hash123", DatasetKeyOpts{Format: "csv"})
	dk2 := k.DatasetKey("hash123", DatasetKeyOpts{Format: "json"})
	if dk1 == dk2 {
		t.Error("Different DatasetKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(dk1, "dataset:v1:") {
		t.Errorf("DatasetKey should carry stage version: %s", dk1)
	}

	// LayoutKey
	lk1 := k.LayoutKey("hash123", LayoutKeyOpts{Kind: "line", Width: 800})
	lk2 := k.LayoutKey("hash123", LayoutKeyOpts{Kind: "bar", Width: 800})
	if lk1 == lk2 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Style: "simple"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png", Style: "simple"})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
}

func TestDefaultKeyerDeterminism(t *testing.T) {
	k := NewDefaultKeyer()
	opts := LayoutKeyOpts{Kind: "scatter", Width: 1024, Height: 768}
	if k.LayoutKey("h", opts) != k.LayoutKey("h", opts) {
		t.Error("Same inputs should produce the same key")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "user:123:")

	// All keys should be prefixed
	dk := scoped.DatasetKey("abc", DatasetKeyOpts{Format: "csv"})
	if !strings.HasPrefix(dk, "user:123:dataset:v1:") {
		t.Errorf("ScopedKeyer DatasetKey should be prefixed: %s", dk)
	}

	lk := scoped.LayoutKey("abc", LayoutKeyOpts{})
	if !strings.HasPrefix(lk, "user:123:") {
		t.Errorf("ScopedKeyer LayoutKey should be prefixed: %s", lk)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.ArtifactKey("abc", ArtifactKeyOpts{Format: "svg"})
	if !strings.HasPrefix(key, "prefix:artifact:v1:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	// Non-nil error is wrapped
	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}

	// Error message is preserved
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	// Non-wrapped errors are not retryable
	if IsRetryable(ErrCacheMiss) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrCacheMiss
	})
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
