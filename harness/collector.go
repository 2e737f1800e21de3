package harness

import (
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/cache"
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/fsx"
)

// Collector walks a directory tree collecting Cases, the Go-idiomatic
// replacement for the original test driver's dopen/dnext loop over
// `*.c` files.
type Collector struct {
	Root string
}

// Collect walks c.Root for `.c` files and resolves each one's expected
// exit code against cch (which may be nil, meaning no cache is loaded
// yet — then only a `.expected` sidecar file can supply the expectation).
func (c *Collector) Collect(cch *cache.Cache) ([]Case, error) {
	paths, err := fsx.WalkFiles(c.Root, ".c")
	if err != nil {
		return nil, err
	}
	cases := make([]Case, len(paths))
	for i, p := range paths {
		expected, ok := loadExpected(p, cch)
		cases[i] = Case{Path: p, Expected: expected, HasExpected: ok}
	}
	return cases, nil
}
