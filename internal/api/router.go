package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Huzaifa-dev-Og/docmed-ai/internal/api/handler"
	"github.com/Huzaifa-dev-Og/docmed-ai/internal/api/middleware"
	"github.com/Huzaifa-dev-Og/docmed-ai/internal/config"
	"github.com/Huzaifa-dev-Og/docmed-ai/internal/service"
)

// Router sets up all API routes
func Router(cfg *config.Config, openaiService *service.OpenAIService) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Apply middlewares. Any origin may call this backend so a separate
	// frontend can reach it directly.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Accept", "Authorization", "Content-Type"},
	}))
	router.Use(middleware.RequestIDMiddleware())

	// Create handlers
	medicalHandler := handler.NewMedicalHandler(openaiService)
	homeHandler := handler.NewHomeHandler()
	healthHandler := handler.NewHealthHandler()

	// Liveness and health checks
	router.GET("/", homeHandler.Home)
	router.GET("/health", healthHandler.Check)

	// Medical info API routes
	api := router.Group("/api")
	{
		api.POST("/get-medical-info", medicalHandler.GetMedicalInfo)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
