package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Lalithkumar18-lk/Ai/internal/config"
	"github.com/Lalithkumar18-lk/Ai/internal/http/handlers"
	"github.com/Lalithkumar18-lk/Ai/internal/http/middleware"
	"github.com/Lalithkumar18-lk/Ai/internal/service"

	_ "github.com/Lalithkumar18-lk/Ai/docs"
)

// Router wires the case desk onto gin. store may be nil when no archive is
// configured.
func Router(cfg config.Config, desk *service.Desk, store handlers.Pinger, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Desk:      desk,
		Store:     store,
		Validator: validator.New(),
		Logger:    logger,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/schema", h.Schema)
		api.GET("/cases", h.CasesList)
		api.POST("/cases", h.CaseCreate)
		api.GET("/cases/:id", h.CaseDetails)
		api.POST("/cases/:id/status", h.CaseStatus)
		api.POST("/cases/:id/assign", h.CaseAssign)
		api.POST("/cases/:id/auto-assign", h.CaseAutoAssign)
		api.POST("/cases/:id/resolution", h.CaseResolution)
		api.POST("/cases/:id/actions", h.CaseAction)
		api.GET("/cases/:id/chat", h.CaseChatHistory)
		api.POST("/cases/:id/chat", h.CaseChat)
		api.GET("/cases/:id/progress", h.CaseProgress)
		api.GET("/analytics", h.Analytics)
		api.GET("/analytics/:metric", h.AnalyticsMetric)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/generate", h.Generate)
		admin.POST("/stream", h.Stream)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
