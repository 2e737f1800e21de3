// Package cache implements the test harness's persistent test-result
// cache: a flat binary file of fixed-size (hash uint32, exit code int32)
// records keyed by an FNV-1a hash of the test file's path, so a repeat
// run of the harness skips recomputing a ground-truth result it already
// has on disk.
//
// Grounded on test_cache.c's record layout and API
// (test_cache_path_hash/get_cached_test_result/add_cached_test_result/
// save_test_results/load_test_results) verbatim in spirit: the hash
// function is the same FNV-1a variant, the record is the same two-field
// shape, and the file is still a raw dump of fixed-size records rather
// than a keyed format — only the write path now uses encoding/binary's
// fixed-width encoding instead of an in-memory struct's byte layout.
package cache

import (
	"bytes"
	"encoding/binary"
	"os"
)

// recordSize is 4 bytes of hash plus 4 bytes of exit code.
const recordSize = 8

type record struct {
	Hash     uint32
	ExitCode int32
}

// Cache holds every loaded record in memory, appending new ones as the
// harness runs; Save writes the whole set back out.
type Cache struct {
	records []record
	misses  uint32
}

// PathHash hashes path with the same FNV-1a variant test_cache.c used,
// so the same path always keys the same cache slot.
func PathHash(path string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(path); i++ {
		h ^= uint32(path[i])
		h *= 16777619
	}
	return h
}

// Load reads a cache file written by Save. A missing file is not an
// error — it just means an empty cache, matching load_test_results'
// behavior of silently leaving the in-memory table empty when the file
// doesn't exist.
func Load(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Cache{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data)%recordSize != 0 {
		return nil, &FormatError{Path: path, Message: "cache file length is not a multiple of the record size"}
	}
	c := &Cache{records: make([]record, 0, len(data)/recordSize)}
	r := bytes.NewReader(data)
	for r.Len() > 0 {
		var rec record
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, err
		}
		c.records = append(c.records, rec)
	}
	return c, nil
}

// Save writes every record currently held to path as a flat dump of
// fixed-size records.
func (c *Cache) Save(path string) error {
	var buf bytes.Buffer
	for _, rec := range c.records {
		if err := binary.Write(&buf, binary.LittleEndian, rec); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Get looks up hash, reporting a miss (and counting it) if absent.
func (c *Cache) Get(hash uint32) (exitCode int32, ok bool) {
	for _, rec := range c.records {
		if rec.Hash == hash {
			return rec.ExitCode, true
		}
	}
	c.misses++
	return 0, false
}

// Add records hash -> exitCode. The caller must ensure hash is not
// already present; like add_cached_test_result, this never checks.
func (c *Cache) Add(hash uint32, exitCode int32) {
	c.records = append(c.records, record{Hash: hash, ExitCode: exitCode})
}

// Misses returns how many Get calls found no matching record.
func (c *Cache) Misses() uint32 { return c.misses }

// FormatError reports a cache file whose length doesn't fit the
// fixed-size record layout.
type FormatError struct {
	Path    string
	Message string
}

func (e *FormatError) Error() string {
	return e.Path + ": " + e.Message
}
