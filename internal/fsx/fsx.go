// Package fsx implements the test harness's two filesystem
// collaborators: a directory iterator collecting source files and a
// plain file reader, both wrapped in an IoError so the harness reports
// failures the same way every other pipeline stage does.
//
// The original directory iterator (dir.cpp) is a hand-rolled
// FindFirstFileA/FindNextFileA wrapper because Win32 offers nothing
// higher-level; Go's filepath.WalkDir already does the recursive walk
// and extension-filtering dir.cpp's dopen/dnext/dendswith loop built by
// hand, so this package is a thin adapter over it rather than a port.
package fsx

import (
	"os"
	"path/filepath"
	"strings"
)

// IoError reports a failure reading a file or walking a directory tree.
type IoError struct {
	Path    string
	Message string
}

func (e *IoError) Error() string {
	return e.Path + ": " + e.Message
}

// WalkFiles returns every regular file under root (recursively) whose
// name ends in ext, in the order filepath.WalkDir visits them —
// lexical per directory, matching dendswith's suffix filter without its
// single-directory limitation.
func WalkFiles(root, ext string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return &IoError{Path: path, Message: err.Error()}
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFile reads path in full, wrapping any failure in an IoError.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IoError{Path: path, Message: err.Error()}
	}
	return data, nil
}
