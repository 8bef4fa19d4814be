package analysis

import (
	"sync"
	"time"

	"github.com/golang/groupcache/lru"

	"github.com/sharprank/sharprank/types"
)

// FileCache provides thread-safe caching of per-file member scores, keyed
// by path and invalidated by modification time. Both rank operations walk
// the same tree, so the second pass and repeated runs over an unchanged
// file reuse the extraction instead of reparsing.
type FileCache struct {
	cache *lru.Cache
	mu    sync.Mutex // lru.Cache.Get updates recency state, so reads write too
}

type cacheEntry struct {
	modTime time.Time
	scores  []types.MemberScore
}

// NewFileCache creates a FileCache holding at most size files.
func NewFileCache(size int) *FileCache {
	return &FileCache{
		cache: lru.New(size),
	}
}

// Get returns the cached scores for path if the file has not been
// modified since they were stored.
func (c *FileCache) Get(path string, modTime time.Time) ([]types.MemberScore, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.cache.Get(path)
	if !ok {
		return nil, false
	}
	entry := val.(cacheEntry)
	if !entry.modTime.Equal(modTime) {
		return nil, false
	}
	return entry.scores, true
}

// Put stores the scores computed for path at the given modification time.
func (c *FileCache) Put(path string, modTime time.Time, scores []types.MemberScore) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(path, cacheEntry{modTime: modTime, scores: scores})
}

// Clear drops every cached file.
func (c *FileCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Clear()
}
