package routes

import (
	"nextignition_backend/docs"
	"nextignition_backend/internal/handlers"
	"nextignition_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options - служебные маршруты вне /api/v1
type Options struct {
	// FilesDir - каталог локального хранилища; пусто, если файлы лежат в S3/R2
	FilesDir string
	// EnableSwagger - UI на /swagger/index.html
	EnableSwagger bool
}

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMiddleware gin.HandlerFunc,
	opts Options,
) {
	ginRouter.GET("/health", appHandlers.HealthHandler.Health)
	ginRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Регистрация HTTP API v1
	api := ginRouter.Group("/api/v1")
	for _, registrar := range appHandlers.Registrars() {
		registrar.RegisterRoutes(api, authMiddleware)
	}

	if opts.FilesDir != "" {
		ginRouter.Static("/files", opts.FilesDir)
		logger.Info("Serving local uploads", "route", "/files", "dir", opts.FilesDir)
	}

	if opts.EnableSwagger {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
			ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		))
		logger.Info("Swagger UI registered", "route", "/swagger/index.html")
	}
}
