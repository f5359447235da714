package hashcache

import (
	"context"
	"path/filepath"
	"testing"

	"carddex/internal/imghash"
	"carddex/internal/logging"
)

func TestCacheRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingerprints.db")
	cache, err := Open(path, logging.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	if _, ok := cache.Lookup(ctx, "https://cdn/thumb.webp"); ok {
		t.Fatalf("unexpected hit on empty cache")
	}

	fp := imghash.FromBits(0xCAFEBABE00112233)
	if err := cache.Store(ctx, "https://cdn/thumb.webp", fp); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, ok := cache.Lookup(ctx, "https://cdn/thumb.webp")
	if !ok {
		t.Fatalf("expected hit after store")
	}
	if got.Bits() != fp.Bits() {
		t.Fatalf("fingerprint corrupted: %s vs %s", got, fp)
	}

	count, err := cache.Len(ctx)
	if err != nil {
		t.Fatalf("len: %v", err)
	}
	if count != 1 {
		t.Fatalf("unexpected count: %d", count)
	}
}

func TestCacheStoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingerprints.db")
	cache, err := Open(path, logging.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	if err := cache.Store(ctx, "url", imghash.FromBits(1)); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := cache.Store(ctx, "url", imghash.FromBits(2)); err != nil {
		t.Fatalf("store again: %v", err)
	}

	got, ok := cache.Lookup(ctx, "url")
	if !ok || got.Bits() != 2 {
		t.Fatalf("overwrite lost: %v %v", got, ok)
	}
	count, err := cache.Len(ctx)
	if err != nil {
		t.Fatalf("len: %v", err)
	}
	if count != 1 {
		t.Fatalf("duplicate row after upsert: %d", count)
	}
}

func TestCachePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingerprints.db")
	ctx := context.Background()

	cache, err := Open(path, logging.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := cache.Store(ctx, "url", imghash.FromBits(7)); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := cache.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path, logging.NewNop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if _, ok := reopened.Lookup(ctx, "url"); !ok {
		t.Fatalf("entry lost across reopen")
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	var cache *Cache
	ctx := context.Background()
	if _, ok := cache.Lookup(ctx, "url"); ok {
		t.Fatalf("nil cache returned a hit")
	}
	if err := cache.Store(ctx, "url", imghash.FromBits(1)); err != nil {
		t.Fatalf("nil store errored: %v", err)
	}
	if err := cache.Close(); err != nil {
		t.Fatalf("nil close errored: %v", err)
	}
}

func TestOpenEmptyPathDisablesCache(t *testing.T) {
	cache, err := Open("", logging.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if cache != nil {
		t.Fatalf("expected nil cache for empty path")
	}
}
