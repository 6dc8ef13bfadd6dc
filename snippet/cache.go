package snippet

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeebo/xxh3"
)

// lineCacheEntry holds a file's split lines with metadata for invalidation.
type lineCacheEntry struct {
	lines   []string
	modTime time.Time
	size    int64
}

// LineCache keeps split file lines in memory for the duration of one process
// run, so batch report generation does not re-read the same source file once
// per issue. Entries are keyed by an xxh3 hash of the file path and are
// invalidated when the file's size or modification time changes. The cache is
// never persisted: source files can change between runs.
type LineCache struct {
	entries map[uint64]*lineCacheEntry
	mutex   sync.RWMutex

	hits   atomic.Int64
	misses atomic.Int64
}

// NewLineCache creates an empty per-run line cache.
func NewLineCache() *LineCache {
	return &LineCache{
		entries: make(map[uint64]*lineCacheEntry),
	}
}

// cacheKey creates a unique cache key for a file path.
func (lc *LineCache) cacheKey(filePath string) uint64 {
	return xxh3.HashString(filePath)
}

// isFileChanged checks if a file has been modified since it was cached.
func (lc *LineCache) isFileChanged(filePath string, entry *lineCacheEntry) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return true, err
	}

	if !fileInfo.ModTime().Equal(entry.modTime) || fileInfo.Size() != entry.size {
		return true, nil
	}

	return false, nil
}

// Get retrieves the cached lines for a file, or reports a miss when the file
// is absent from the cache or has changed on disk since it was stored.
func (lc *LineCache) Get(filePath string) ([]string, bool) {
	key := lc.cacheKey(filePath)

	lc.mutex.RLock()
	entry, found := lc.entries[key]
	lc.mutex.RUnlock()

	if !found {
		lc.misses.Add(1)
		return nil, false
	}

	changed, err := lc.isFileChanged(filePath, entry)
	if err != nil || changed {
		lc.mutex.Lock()
		delete(lc.entries, key)
		lc.mutex.Unlock()
		lc.misses.Add(1)
		return nil, false
	}

	lc.hits.Add(1)
	return entry.lines, true
}

// Stats reports hit/miss accounting for the current run.
func (lc *LineCache) Stats() map[string]interface{} {
	hits := lc.hits.Load()
	misses := lc.misses.Load()
	total := hits + misses

	hitRate := 0.0
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}

	return map[string]interface{}{
		"total_requests":   total,
		"cache_hits":       hits,
		"cache_misses":     misses,
		"hit_rate_percent": hitRate,
	}
}

// Set stores a file's lines along with the metadata used for invalidation.
func (lc *LineCache) Set(filePath string, lines []string) error {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	lc.mutex.Lock()
	defer lc.mutex.Unlock()

	lc.entries[lc.cacheKey(filePath)] = &lineCacheEntry{
		lines:   lines,
		modTime: fileInfo.ModTime(),
		size:    fileInfo.Size(),
	}

	return nil
}

// Delete removes a single cache entry.
func (lc *LineCache) Delete(filePath string) {
	lc.mutex.Lock()
	defer lc.mutex.Unlock()

	delete(lc.entries, lc.cacheKey(filePath))
}

// Clear removes all cache entries.
func (lc *LineCache) Clear() {
	lc.mutex.Lock()
	defer lc.mutex.Unlock()

	lc.entries = make(map[uint64]*lineCacheEntry)
}

// Len returns the number of cached files.
func (lc *LineCache) Len() int {
	lc.mutex.RLock()
	defer lc.mutex.RUnlock()

	return len(lc.entries)
}
