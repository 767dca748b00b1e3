package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes wires the root and documentation routes.
func SetupWebRoutes(router *gin.Engine) {
	web := router.Group("/")
	{
		web.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "Chile Region Normalization Service",
				"docs":    "/docs",
			})
		})

		web.GET("/docs", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"api": "Region Normalization API v1",
				"endpoints": map[string]string{
					"resolve":  "POST /v1/regions/resolve",
					"batch":    "POST /v1/regions/resolve/batch",
					"list":     "GET /v1/regions",
					"validate": "GET /v1/regions/validate?region=...",
					"stats":    "GET /v1/admin/stats",
					"health":   "GET /v1/health",
				},
			})
		})
	}
}
