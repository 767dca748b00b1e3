package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/chile-cleaner/app/models"
	"github.com/chile-cleaner/cleaner"
	"github.com/chile-cleaner/internal/normalizer"
)

// ServiceStats are the operational counters exposed on the admin surface.
type ServiceStats struct {
	TotalResolved int64      `json:"total_resolved"`
	TotalNotFound int64      `json:"total_not_found"`
	RegionCount   int        `json:"region_count"`
	UptimeSeconds int64      `json:"uptime_seconds"`
	Cache         CacheStats `json:"cache"`
}

// RegionService resolves region inputs for the HTTP surface: it wraps the
// cleaner, memoizes textual resolutions by normalized key, and keeps
// counters for the stats endpoint.
type RegionService struct {
	cleaner  *cleaner.Cleaner
	cache    ICacheService
	logger   *zap.Logger
	resolved atomic.Int64
	notFound atomic.Int64
	started  time.Time
}

// NewRegionService creates a RegionService.
func NewRegionService(c *cleaner.Cleaner, cache ICacheService, logger *zap.Logger) *RegionService {
	return &RegionService{
		cleaner: c,
		cache:   cache,
		logger:  logger,
		started: time.Now(),
	}
}

// inputText renders any accepted input as the text echoed back to callers.
func inputText(input any) string {
	switch v := input.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Resolve resolves one input and reports whether it was served from cache.
// Textual inputs go through the cache keyed by their normalized form;
// integer inputs hit the code table directly.
func (rs *RegionService) Resolve(ctx context.Context, input any, useCache bool) (*models.ResolveResult, bool) {
	text, isText := input.(string)
	if isText && useCache {
		key := normalizer.NormalizeKey(text)
		if key != "" {
			if cached, found, err := rs.cache.Get(ctx, key); err == nil && found {
				hit := *cached
				hit.Input = text
				rs.count(hit.Matched)
				return &hit, true
			}
		}
	}

	result := rs.resolve(input)
	rs.count(result.Matched)

	if isText && useCache && result.NormalizedKey != "" {
		if err := rs.cache.Set(ctx, result.NormalizedKey, result); err != nil {
			rs.logger.Warn("Failed to cache resolution", zap.Error(err), zap.String("key", result.NormalizedKey))
		}
	}
	return result, false
}

func (rs *RegionService) resolve(input any) *models.ResolveResult {
	result := &models.ResolveResult{Input: inputText(input)}
	if text, ok := input.(string); ok {
		result.NormalizedKey = normalizer.NormalizeKey(text)
	}

	match, ok := rs.cleaner.Resolve(input)
	if !ok {
		rs.logger.Debug("Region not recognized", zap.String("input", result.Input))
		return result
	}

	result.Matched = true
	result.Code = match.Code
	result.OfficialName = match.OfficialName
	return result
}

func (rs *RegionService) count(matched bool) {
	if matched {
		rs.resolved.Add(1)
	} else {
		rs.notFound.Add(1)
	}
}

// ResolveBatch resolves inputs in order. Each item is a constant-time
// lookup, so the batch runs synchronously on the calling goroutine.
func (rs *RegionService) ResolveBatch(ctx context.Context, inputs []any, useCache bool) []*models.ResolveResult {
	results := make([]*models.ResolveResult, len(inputs))
	for i, input := range inputs {
		results[i], _ = rs.Resolve(ctx, input, useCache)
	}
	return results
}

// Validate reports whether an input resolves to a known region.
func (rs *RegionService) Validate(input any) bool {
	return rs.cleaner.Validate(input)
}

// ListRegions returns all regions ascending by code.
func (rs *RegionService) ListRegions() []cleaner.Result {
	return rs.cleaner.ListAll()
}

// Stats returns the service counters plus a cache snapshot.
func (rs *RegionService) Stats() ServiceStats {
	return ServiceStats{
		TotalResolved: rs.resolved.Load(),
		TotalNotFound: rs.notFound.Load(),
		RegionCount:   len(rs.cleaner.ListAll()),
		UptimeSeconds: int64(time.Since(rs.started).Seconds()),
		Cache:         rs.cache.Stats(),
	}
}

// InvalidateCache drops every memoized resolution.
func (rs *RegionService) InvalidateCache(ctx context.Context) error {
	return rs.cache.Clear(ctx)
}
