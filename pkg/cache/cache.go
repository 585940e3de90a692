// Package cache provides a small artifact cache for rendered shape icons.
//
// Icons are a pure function of the shape parameters and the render
// options, so entries never expire. A key captures every input that
// affects the output bytes; a changed parameter produces a new key and
// the stale entry is simply never read again.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Cache stores rendered icon bytes keyed by a content hash.
type Cache interface {
	// Get returns the cached bytes for key. The boolean reports
	// whether the entry exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key, overwriting any existing entry.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes the entry for key if present.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Key derives a stable cache key from an ordered list of parts.
// Parts are JSON encoded so maps hash deterministically.
func Key(parts ...any) string {
	h := sha256.New()
	for _, p := range parts {
		b, err := json.Marshal(p)
		if err != nil {
			fmt.Fprintf(h, "!%v", p)
			continue
		}
		h.Write(b)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ArtifactKey builds the cache key for one rendered icon.
func ArtifactKey(kind string, numPoints int, args map[string]float64, format string, width, height int, stroke float64, color string) string {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	ordered := make([][2]any, len(names))
	for i, name := range names {
		ordered[i] = [2]any{name, args[name]}
	}
	return Key(kind, numPoints, ordered, format, width, height, stroke, color)
}
