package services

import (
	"context"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/chile-cleaner/app/models"
)

// LRUCacheService is an in-process, size-bounded cache for resolution
// results. Resolution is already a map lookup, so the cache exists to skip
// text normalization for inputs that repeat across a pipeline run, and to
// surface hit-rate stats for operators.
type LRUCacheService struct {
	cache  *lru.Cache[string, *models.ResolveResult]
	hits   atomic.Int64
	misses atomic.Int64
	logger *zap.Logger
}

// NewLRUCacheService creates a cache holding at most size entries.
func NewLRUCacheService(size int, logger *zap.Logger) (*LRUCacheService, error) {
	cache, err := lru.New[string, *models.ResolveResult](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &LRUCacheService{cache: cache, logger: logger}, nil
}

// Get returns the cached result for a key, if present.
func (cs *LRUCacheService) Get(ctx context.Context, key string) (*models.ResolveResult, bool, error) {
	result, ok := cs.cache.Get(key)
	if !ok {
		cs.misses.Add(1)
		return nil, false, nil
	}
	cs.hits.Add(1)
	return result, true, nil
}

// Set stores a result under a key.
func (cs *LRUCacheService) Set(ctx context.Context, key string, result *models.ResolveResult) error {
	cs.cache.Add(key, result)
	return nil
}

// Delete removes a single key.
func (cs *LRUCacheService) Delete(ctx context.Context, key string) error {
	cs.cache.Remove(key)
	return nil
}

// Clear removes every cached entry and leaves the counters intact.
func (cs *LRUCacheService) Clear(ctx context.Context) error {
	cs.cache.Purge()
	cs.logger.Info("Resolution cache cleared")
	return nil
}

// Stats reports current size and hit/miss counters.
func (cs *LRUCacheService) Stats() CacheStats {
	return CacheStats{
		Size:   cs.cache.Len(),
		Hits:   cs.hits.Load(),
		Misses: cs.misses.Load(),
	}
}
