package router

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"urdu-digest/api/handlers"
	"urdu-digest/db"
	_ "urdu-digest/docs"
	"urdu-digest/services"
)

// New builds the gin engine with all routes registered.
func New(digestSvc *services.DigestService, feedSvc *services.FeedService) *gin.Engine {
	r := gin.Default()

	// Health check with independent probes per dependency: the service
	// stays "degraded" rather than down when one backend is unreachable.
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		probes := gin.H{
			"mongo":          "ok",
			"postgres":       "ok",
			"content_source": "ok",
			"gemini_key":     "ok",
		}
		healthy := true

		if err := db.PingMongo(ctx); err != nil {
			probes["mongo"] = err.Error()
			healthy = false
		}
		if err := db.PingPostgres(ctx); err != nil {
			probes["postgres"] = err.Error()
			healthy = false
		}
		if err := digestSvc.ProbeContentSource(ctx); err != nil {
			probes["content_source"] = err.Error()
			healthy = false
		}
		if os.Getenv("GEMINI_API_KEY") == "" {
			// Degraded, not down: local fallbacks still serve digests.
			probes["gemini_key"] = "missing (fallback mode)"
		}

		if !healthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "probes": probes})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "probes": probes})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/digests", handlers.CreateDigestHandler(digestSvc))
		api.GET("/digests", handlers.ListDigestsHandler(digestSvc))
		api.GET("/digests/:id", handlers.GetDigestHandler(digestSvc))
		api.POST("/digests/:id/view", handlers.IncrementViewHandler(digestSvc))
		api.GET("/articles", handlers.ListArticlesHandler(digestSvc))
		api.GET("/feeds", handlers.ListFeedsHandler(feedSvc))
	}

	return r
}
