package fsx_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/fsx"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWalkFilesFindsMatchingExtensionRecursively(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.c"), "int main(){return 0;}")
	writeFile(t, filepath.Join(dir, "sub", "b.c"), "int main(){return 1;}")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignore me")

	got, err := fsx.WalkFiles(dir, ".c")
	if err != nil {
		t.Fatalf("WalkFiles: %v", err)
	}
	sort.Strings(got)
	if len(got) != 2 {
		t.Fatalf("expected 2 .c files, got %v", got)
	}
}

func TestReadFileReturnsIoErrorForMissingFile(t *testing.T) {
	_, err := fsx.ReadFile(filepath.Join(t.TempDir(), "missing.c"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if _, ok := err.(*fsx.IoError); !ok {
		t.Fatalf("expected *fsx.IoError, got %T", err)
	}
}

func TestReadFileReturnsContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.c")
	writeFile(t, path, "int main(){return 0;}")

	got, err := fsx.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "int main(){return 0;}" {
		t.Fatalf("unexpected contents: %q", got)
	}
}
