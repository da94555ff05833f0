package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ai-blog-api/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	generateHandler := NewGenerateHandler(services, log)
	blogHandler := NewBlogHandler(services, log)
	adminHandler := NewAdminHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		// Generation endpoints
		generate := v1.Group("/generate")
		{
			generate.POST("/blog", generateHandler.GenerateBlog)
			generate.POST("/comment", generateHandler.GenerateComment)
			generate.POST("/summary", generateHandler.GenerateSummary)
			generate.POST("/social", generateHandler.GenerateSocial)
		}

		// Blog endpoints
		// Gin requires a single param name per path segment, so the
		// detail route reads :id as the slug.
		blogs := v1.Group("/blogs")
		{
			blogs.GET("", blogHandler.ListBlogs)
			blogs.GET("/:id", blogHandler.GetBlog)
			blogs.POST("/:id/like", blogHandler.LikeBlog)
			blogs.GET("/:id/comments", blogHandler.ListComments)
			blogs.POST("/:id/comments", blogHandler.SubmitComment)
			blogs.GET("/:id/social", blogHandler.ListSocialPosts)
		}

		// Admin endpoints
		admin := v1.Group("/admin")
		{
			admin.GET("/configs", adminHandler.ListConfigs)
			admin.PUT("/configs/:key", adminHandler.UpdateConfig)
			admin.GET("/stats", adminHandler.Stats)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "ai-blog-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
