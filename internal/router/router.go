package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/knt-work/siromix/internal/config"
	"github.com/knt-work/siromix/internal/handler"
	"github.com/knt-work/siromix/internal/middleware"
	"github.com/knt-work/siromix/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Mix *handler.MixHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the mixing routes (per IP, per minute).
	mixLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)

	// ─── Exams Group ───────────────────────────────────────────────────
	exams := router.Group("/api/v1/exams")
	exams.Use(mixLimiter.Middleware())
	{
		exams.POST("/mix", handlers.Mix.MixExams)
		exams.POST("/check", handlers.Mix.CheckExam)
	}

	return router
}
