package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chile-cleaner/app/controllers"
	"github.com/chile-cleaner/helpers/utils"
)

// SetupAPIRoutes wires the versioned API routes.
func SetupAPIRoutes(router *gin.Engine, regionController *controllers.RegionController) {
	v1 := router.Group("/v1")
	{
		regions := v1.Group("/regions")
		{
			regions.GET("", regionController.ListRegions)
			regions.GET("/validate", regionController.ValidateRegion)
			regions.POST("/resolve", regionController.ResolveRegion)
			regions.POST("/resolve/batch", regionController.BatchResolve)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/stats", regionController.GetStats)
			admin.POST("/cache/invalidate", regionController.InvalidateCache)
		}

		v1.GET("/health", regionController.HealthCheck)
	}
}

// SetupHealthRoutes wires the unversioned probe routes.
func SetupHealthRoutes(router *gin.Engine, regionController *controllers.RegionController) {
	router.GET("/health", regionController.HealthCheck)
	router.GET("/ready", regionController.HealthCheck)
	router.GET("/live", regionController.HealthCheck)
}

// SetupAllRoutes wires middleware and every route group.
func SetupAllRoutes(router *gin.Engine, regionController *controllers.RegionController) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, regionController)
	SetupAPIRoutes(router, regionController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(requestIDMiddleware())
}

// requestIDMiddleware attaches an X-Request-ID to every response, keeping a
// caller-provided one when present.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = utils.NewRequestID()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
