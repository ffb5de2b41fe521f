package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"article-generator/internal/middleware"
)

// RouterConfig carries the handlers and collaborators the router wires.
type RouterConfig struct {
	Generate *GenerateHandler
	Publish  *PublishHandler
	Health   *HealthHandler
	Verifier middleware.Verifier
}

// corsConfig allows any origin with the headers the browser client sends.
func corsConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader, "Retry-After"},
		MaxAge:          12 * time.Hour,
	}
}

// NewRouter builds the HTTP router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.ClientID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(cors.New(corsConfig()))
	router.Use(middleware.CORSFallback(corsConfig()))

	router.GET("/health", cfg.Health.Health)
	router.GET("/ready", cfg.Health.Ready)
	router.GET("/live", cfg.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/functions/v1/generate-article", cfg.Generate.Generate)

	requireUser := middleware.RequireUser(cfg.Verifier)
	router.POST("/functions/v1/upload-to-wordpress", requireUser, cfg.Publish.Publish)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/articles/generate", cfg.Generate.Generate)

		authed := v1.Group("", requireUser)
		authed.POST("/articles/publish", cfg.Publish.Publish)
		authed.GET("/publications", cfg.Publish.ListPublications)
	}

	return router
}
