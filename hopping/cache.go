// SPDX-License-Identifier: MIT

package hopping

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of parsed models kept by NewCache(0).
const DefaultCacheSize = 8

// cacheKey ties a parsed model to the file version it came from, so an
// edited file is re-read instead of served stale.
type cacheKey struct {
	path    string
	size    int64
	modNano int64
}

// Cache memoizes Load by path, size and modification time.
// Models are immutable, so a cached *Model is shared between callers.
// Cache is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[cacheKey, *Model]
	load    func(string) (*Model, error)
}

// NewCache returns a Cache holding at most size models (DefaultCacheSize when size <= 0).
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[cacheKey, *Model](size)
	if err != nil {
		return nil, fmt.Errorf("hopping: new cache: %w", err)
	}

	return &Cache{entries: entries, load: Load}, nil
}

// Load returns the cached model for path or parses the file on a miss.
// Errors are never cached.
func (c *Cache) Load(path string) (*Model, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("hopping: load %s: %w: %w", path, ErrFileNotFound, err)
		}
		return nil, fmt.Errorf("hopping: load %s: %w", path, err)
	}
	key := cacheKey{path: path, size: info.Size(), modNano: info.ModTime().UnixNano()}
	if m, ok := c.entries.Get(key); ok {
		return m, nil
	}

	m, err := c.load(path)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, m)

	return m, nil
}

// Len returns the number of cached models.
func (c *Cache) Len() int { return c.entries.Len() }
