package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/cache"
)

func TestPathHashIsStableForEqualPaths(t *testing.T) {
	a := cache.PathHash("tests/add.c")
	b := cache.PathHash("tests/add.c")
	if a != b {
		t.Fatalf("expected equal hashes for equal paths, got %d and %d", a, b)
	}
}

func TestPathHashDiffersForDifferentPaths(t *testing.T) {
	a := cache.PathHash("tests/add.c")
	b := cache.PathHash("tests/sub.c")
	if a == b {
		t.Fatalf("expected different hashes for different paths, both got %d", a)
	}
}

func TestGetMissesOnEmptyCache(t *testing.T) {
	c := &cache.Cache{}
	if _, ok := c.Get(cache.PathHash("x.c")); ok {
		t.Fatal("expected a miss on an empty cache")
	}
	if c.Misses() != 1 {
		t.Fatalf("expected 1 recorded miss, got %d", c.Misses())
	}
}

func TestAddThenGetRoundTrips(t *testing.T) {
	c := &cache.Cache{}
	h := cache.PathHash("x.c")
	c.Add(h, 42)
	got, ok := c.Get(h)
	if !ok || got != 42 {
		t.Fatalf("expected (42, true), got (%d, %v)", got, ok)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tests.cache")

	c := &cache.Cache{}
	c.Add(cache.PathHash("a.c"), 0)
	c.Add(cache.PathHash("b.c"), 7)
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, ok := loaded.Get(cache.PathHash("b.c"))
	if !ok || got != 7 {
		t.Fatalf("expected (7, true) after round-trip, got (%d, %v)", got, ok)
	}
}

func TestLoadMissingFileReturnsEmptyCache(t *testing.T) {
	c, err := cache.Load(filepath.Join(t.TempDir(), "does-not-exist.cache"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := c.Get(cache.PathHash("x.c")); ok {
		t.Fatal("expected a miss on a cache loaded from a missing file")
	}
}
