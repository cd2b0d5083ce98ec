package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes. auth guards the admin routes.
func SetupRoutes(router *gin.Engine, handler Handler, auth gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Catalog endpoints (public read access)
		v1.GET("/artworks", handler.ListArtworks)
		v1.GET("/artworks/:id", handler.GetArtwork)
		v1.GET("/runs/:id", handler.GetRun)
		v1.GET("/stats", handler.Stats)

		// Staging index endpoints (public read access)
		v1.GET("/index", handler.ListIndexRecords)
		v1.GET("/index/:id", handler.GetIndexRecord)

		// Pipeline endpoints (requires authentication)
		admin := v1.Group("", auth)
		admin.POST("/import", handler.ImportRecords)
		admin.POST("/index-and-import", handler.IndexAndImport)
		admin.POST("/index/reset-failed", handler.ResetFailedIndexRecords)
		admin.POST("/index/:id/reset", handler.ResetIndexRecord)
		admin.POST("/promote", handler.Promote)
		admin.DELETE("/artworks/:id", handler.DeleteArtwork)
	}
}
