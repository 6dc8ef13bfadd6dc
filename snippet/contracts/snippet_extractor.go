package contracts

import "github.com/codepeek/codepeek/snippet/models"

type ISnippetExtractor interface {
	Extract(filePath string, targetLine int, contextRadius int) (*models.Snippet, bool)
	CacheStats() map[string]interface{}
}
