package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chile-cleaner/app/requests"
	"github.com/chile-cleaner/app/responses"
	"github.com/chile-cleaner/app/services"
)

const maxBatchSize = 20000

// RegionController handles region resolution requests.
type RegionController struct {
	regionService *services.RegionService
	version       string
	logger        *zap.Logger
}

// NewRegionController creates a RegionController.
func NewRegionController(regionService *services.RegionService, version string, logger *zap.Logger) *RegionController {
	return &RegionController{
		regionService: regionService,
		version:       version,
		logger:        logger,
	}
}

// ResolveRegion resolves a single region input. An unrecognized region is a
// 200 with matched=false, not an error: missing data is the expected case
// in cleaning pipelines.
func (rc *RegionController) ResolveRegion(c *gin.Context) {
	var req requests.ResolveRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	startTime := time.Now()
	result, cacheHit := rc.regionService.Resolve(c.Request.Context(), req.Region, req.Options.UseCache)

	c.JSON(http.StatusOK, responses.ResolveRegionResponse{
		Result:           result,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		CacheHit:         cacheHit,
	})
}

// BatchResolve resolves a list of inputs in order. Resolution is a map
// lookup per item, so even the maximum batch finishes synchronously.
func (rc *RegionController) BatchResolve(c *gin.Context) {
	var req requests.BatchResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	if len(req.Regions) > maxBatchSize {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "TOO_MANY_REGIONS",
			Message: "Batch exceeds the 20,000 input limit",
		})
		return
	}

	startTime := time.Now()
	results := rc.regionService.ResolveBatch(c.Request.Context(), req.Regions, req.Options.UseCache)

	matched := 0
	for _, r := range results {
		if r.Matched {
			matched++
		}
	}

	c.JSON(http.StatusOK, responses.BatchResolveResponse{
		Results:          results,
		Total:            len(results),
		Matched:          matched,
		NotFound:         len(results) - matched,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	})
}

// ListRegions returns the full table, ascending by code.
func (rc *RegionController) ListRegions(c *gin.Context) {
	regions := rc.regionService.ListRegions()
	c.JSON(http.StatusOK, responses.ListRegionsResponse{
		Regions: regions,
		Total:   len(regions),
	})
}

// ValidateRegion reports whether the query parameter names a known region.
func (rc *RegionController) ValidateRegion(c *gin.Context) {
	input, ok := c.GetQuery("region")
	if !ok {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_REGION",
			Message: "Query parameter 'region' is required",
		})
		return
	}

	c.JSON(http.StatusOK, responses.ValidateRegionResponse{
		Input: input,
		Valid: rc.regionService.Validate(input),
	})
}

// GetStats returns service and cache counters.
func (rc *RegionController) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, responses.StatsResponse{Stats: rc.regionService.Stats()})
}

// InvalidateCache drops all memoized resolutions.
func (rc *RegionController) InvalidateCache(c *gin.Context) {
	if err := rc.regionService.InvalidateCache(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "CACHE_ERROR",
			Message: "Failed to invalidate cache: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "Resolution cache invalidated",
	})
}

// HealthCheck reports liveness and table size.
func (rc *RegionController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:  "ok",
		Version: rc.version,
		Regions: len(rc.regionService.ListRegions()),
	})
}
