package harness

import (
	"path/filepath"
	"testing"

	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/cache"
)

func TestCollectorFindsCFilesAndSidecarExpectations(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.c", "int main(){ return 0; }")
	writeSource(t, dir, "a.c.expected", "0")
	writeSource(t, dir, "b.c", "int main(){ return 1; }")
	writeSource(t, dir, "notes.txt", "ignore me")

	c := &Collector{Root: dir}
	cases, err := c.Collect(nil)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	byName := map[string]Case{}
	for _, cs := range cases {
		byName[filepath.Base(cs.Path)] = cs
	}
	if len(byName) != 2 {
		t.Fatalf("expected 2 cases, got %d: %v", len(byName), byName)
	}
	a := byName["a.c"]
	if !a.HasExpected || a.Expected != 0 {
		t.Errorf("expected a.c's sidecar to resolve to 0, got %+v", a)
	}
	b := byName["b.c"]
	if b.HasExpected {
		t.Errorf("expected b.c to have no known expectation, got %+v", b)
	}
}

func TestCollectorFallsBackToCache(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "cached.c", "int main(){ return 2; }")

	c := &cache.Cache{}
	c.Add(cache.PathHash(path), 2)

	col := &Collector{Root: dir}
	cases, err := col.Collect(c)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(cases) != 1 || !cases[0].HasExpected || cases[0].Expected != 2 {
		t.Fatalf("expected a single cached case with Expected=2, got %+v", cases)
	}
}
