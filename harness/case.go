package harness

import (
	"strconv"
	"strings"

	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/cache"
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/fsx"
)

// Case is one test file: its source path and the exit code every
// backend (interpreter, compiled-and-run executable) is expected to
// agree on.
type Case struct {
	Path        string
	Expected    int32
	HasExpected bool
}

// loadExpected resolves a case's expected exit code from a `<path>.expected`
// sidecar file first, falling back to a cache hit keyed by the path's
// hash — the sidecar is an explicit, human-editable expectation; the
// cache is where a result computed once (e.g. against a ground-truth
// compiler) gets remembered.
func loadExpected(path string, c *cache.Cache) (int32, bool) {
	if data, err := fsx.ReadFile(path + ".expected"); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
			return int32(n), true
		}
	}
	if c != nil {
		if v, ok := c.Get(cache.PathHash(path)); ok {
			return v, true
		}
	}
	return 0, false
}
