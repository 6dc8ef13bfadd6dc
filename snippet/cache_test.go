package snippet

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test line cache setup and basic operations
func TestLineCache_BasicOperations(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "cache_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	testFile := filepath.Join(tempDir, "test.php")
	err = ioutil.WriteFile(testFile, []byte("$a = 1;\n$b = 2;\n"), 0644)
	require.NoError(t, err)

	cache := NewLineCache()

	// Should not be cached initially
	lines, found := cache.Get(testFile)
	assert.False(t, found)
	assert.Nil(t, lines)

	// Set cache
	err = cache.Set(testFile, []string{"$a = 1;", "$b = 2;"})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	// Get from cache
	cachedLines, found := cache.Get(testFile)
	assert.True(t, found)
	assert.Equal(t, []string{"$a = 1;", "$b = 2;"}, cachedLines)
}

// Test cache invalidation when the file is modified
func TestLineCache_FileInvalidation(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "cache_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	testFile := filepath.Join(tempDir, "test.php")
	err = ioutil.WriteFile(testFile, []byte("$a = 1;\n"), 0644)
	require.NoError(t, err)

	cache := NewLineCache()
	err = cache.Set(testFile, []string{"$a = 1;"})
	require.NoError(t, err)

	// Verify cache hit
	_, found := cache.Get(testFile)
	assert.True(t, found)

	// Wait a moment to ensure different modification time
	time.Sleep(time.Millisecond * 10)

	// Modify the file
	err = ioutil.WriteFile(testFile, []byte("$a = 1;\n$b = 2;\n"), 0644)
	require.NoError(t, err)

	// Cache should be invalidated
	lines, found := cache.Get(testFile)
	assert.False(t, found)
	assert.Nil(t, lines)
	assert.Equal(t, 0, cache.Len())
}

// Test cache invalidation when the file is deleted
func TestLineCache_DeletedFileInvalidation(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "cache_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	testFile := filepath.Join(tempDir, "test.php")
	err = ioutil.WriteFile(testFile, []byte("$a = 1;\n"), 0644)
	require.NoError(t, err)

	cache := NewLineCache()
	err = cache.Set(testFile, []string{"$a = 1;"})
	require.NoError(t, err)

	err = os.Remove(testFile)
	require.NoError(t, err)

	_, found := cache.Get(testFile)
	assert.False(t, found)
}

// Test explicit entry removal and full clear
func TestLineCache_DeleteAndClear(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "cache_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	fileA := filepath.Join(tempDir, "a.php")
	fileB := filepath.Join(tempDir, "b.php")
	require.NoError(t, ioutil.WriteFile(fileA, []byte("$a = 1;\n"), 0644))
	require.NoError(t, ioutil.WriteFile(fileB, []byte("$b = 2;\n"), 0644))

	cache := NewLineCache()
	require.NoError(t, cache.Set(fileA, []string{"$a = 1;"}))
	require.NoError(t, cache.Set(fileB, []string{"$b = 2;"}))
	assert.Equal(t, 2, cache.Len())

	cache.Delete(fileA)
	assert.Equal(t, 1, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
}

// Test that Set on a missing file fails
func TestLineCache_SetMissingFile(t *testing.T) {
	cache := NewLineCache()

	err := cache.Set("/nonexistent/path/file.php", []string{"line"})

	assert.Error(t, err)
}

// Test hit/miss accounting
func TestLineCache_Stats(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "cache_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	testFile := filepath.Join(tempDir, "test.php")
	require.NoError(t, ioutil.WriteFile(testFile, []byte("$a = 1;\n"), 0644))

	cache := NewLineCache()

	fresh := cache.Stats()
	assert.Equal(t, int64(0), fresh["total_requests"])
	assert.Equal(t, 0.0, fresh["hit_rate_percent"])

	cache.Get(testFile) // miss
	require.NoError(t, cache.Set(testFile, []string{"$a = 1;"}))
	cache.Get(testFile) // hit
	cache.Get(testFile) // hit

	stats := cache.Stats()
	assert.Equal(t, int64(3), stats["total_requests"])
	assert.Equal(t, int64(2), stats["cache_hits"])
	assert.Equal(t, int64(1), stats["cache_misses"])
	assert.InDelta(t, 66.6, stats["hit_rate_percent"].(float64), 0.1)
}
