package services

import (
	"context"

	"github.com/chile-cleaner/app/models"
)

// CacheStats is a snapshot of cache effectiveness counters.
type CacheStats struct {
	Size   int   `json:"size"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// ICacheService memoizes resolution results by normalized key.
type ICacheService interface {
	// Get returns the cached result for a key, if present.
	Get(ctx context.Context, key string) (*models.ResolveResult, bool, error)

	// Set stores a result under a key, evicting older entries if full.
	Set(ctx context.Context, key string, result *models.ResolveResult) error

	// Delete removes a single key.
	Delete(ctx context.Context, key string) error

	// Clear removes every cached entry.
	Clear(ctx context.Context) error

	// Stats reports current size and hit/miss counters.
	Stats() CacheStats
}
