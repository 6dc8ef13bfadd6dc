package snippet

import (
	"bufio"
	"os"
	"unicode/utf8"

	"github.com/codepeek/codepeek/snippet/contracts"
	"github.com/codepeek/codepeek/snippet/models"
)

// maxLineLength bounds the stored length of any excerpt line in characters,
// so report size stays bounded regardless of source formatting. Over-long
// lines are hard-cut at this many runes with no marker; cutting on a rune
// boundary keeps the excerpt valid UTF-8.
const maxLineLength = 250

// maxScanTokenSize allows reading source lines well past the truncation
// length before bufio.Scanner gives up on them.
const maxScanTokenSize = 1024 * 1024

// SnippetExtractor extracts bounded source excerpts around diagnostic
// locations.
type SnippetExtractor struct {
	lineCache *LineCache
}

// NewSnippetExtractor initializes a new SnippetExtractor. With caching
// enabled, files read during this run keep their split lines in memory.
func NewSnippetExtractor(enableCache bool) contracts.ISnippetExtractor {
	var lineCache *LineCache
	if enableCache {
		lineCache = NewLineCache()
	}

	return &SnippetExtractor{
		lineCache: lineCache,
	}
}

// Extract returns the excerpt around targetLine, or false when the file is
// missing, unreadable or not line-readable. A failed extraction never yields
// a partial snippet; the caller renders the report without the visual aid.
func (extractor *SnippetExtractor) Extract(filePath string, targetLine int, contextRadius int) (*models.Snippet, bool) {
	lines, ok := extractor.readLines(filePath)
	if !ok {
		return nil, false
	}

	totalLines := len(lines)

	window := compensateWindow(targetLine, contextRadius, totalLines)

	if signatureLine, found := locateSignature(lines, targetLine); found {
		window = negotiateExpansion(window, signatureLine, targetLine, contextRadius, totalLines)
	}

	return materialize(filePath, targetLine, contextRadius, lines, window), true
}

// CacheStats reports line-cache statistics for the current run.
func (extractor *SnippetExtractor) CacheStats() map[string]interface{} {
	if extractor.lineCache == nil {
		return map[string]interface{}{
			"cache_enabled": false,
		}
	}

	stats := extractor.lineCache.Stats()
	stats["cache_enabled"] = true
	stats["cached_files"] = extractor.lineCache.Len()
	return stats
}

// readLines returns the file's lines, from cache when possible. Any failure
// (missing path, permissions, non-regular file, reader fault) reports false.
func (extractor *SnippetExtractor) readLines(filePath string) ([]string, bool) {
	if extractor.lineCache != nil {
		if cachedLines, found := extractor.lineCache.Get(filePath); found {
			return cachedLines, true
		}
	}

	fileInfo, err := os.Stat(filePath)
	if err != nil || !fileInfo.Mode().IsRegular() {
		return nil, false
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, false
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScanTokenSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, false
	}

	if extractor.lineCache != nil {
		extractor.lineCache.Set(filePath, lines)
	}

	return lines, true
}

// materialize packages the resolved window into the snippet value, truncating
// over-long lines.
func materialize(filePath string, targetLine int, contextRadius int, lines []string, window resolvedWindow) *models.Snippet {
	excerpt := make(map[int]string)
	for number := window.startLine; number <= window.endLine; number++ {
		text := lines[number-1]
		if utf8.RuneCountInString(text) > maxLineLength {
			text = string([]rune(text)[:maxLineLength])
		}
		excerpt[number] = text
	}

	return &models.Snippet{
		FilePath:      filePath,
		TargetLine:    targetLine,
		ContextRadius: contextRadius,
		Lines:         excerpt,
	}
}
