package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/config"
	"nextignition_backend/internal/database"
	"nextignition_backend/internal/email"
	"nextignition_backend/internal/handlers"
	"nextignition_backend/internal/imageprocessor"
	"nextignition_backend/internal/logger"
	"nextignition_backend/internal/metrics"
	"nextignition_backend/internal/middleware"
	"nextignition_backend/internal/repositories"
	"nextignition_backend/internal/routes"
	"nextignition_backend/internal/services"
	"nextignition_backend/internal/storage"
	"nextignition_backend/internal/validator"
	"nextignition_backend/internal/workers"
	"nextignition_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App - собранное приложение: роутер и сервисы поверх одной БД
type App struct {
	Router   *gin.Engine
	Services *services.ServiceContainer
	Storage  storage.Storage
}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err.Error())
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	if cfg.JWT.UsingFallbackSecret {
		logger.Warn("JWT_SECRET is not set, using insecure development secret")
	}
	apperrors.SetDebug(cfg.Server.Env == config.EnvDevelopment)
	if cfg.Server.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database, cfg.Server.Env)
	if err != nil {
		logger.Fatal("Database unavailable", "error", err.Error())
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err.Error())
		}
	}

	if err := database.SeedFirstAdmin(gormDB, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		// без админа не стартуем: проблема с БД
		logger.Fatal("Failed to seed first admin user", "error", err.Error())
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err.Error())
	}
	if err := metrics.RegisterDBStats(sqlDB, "nextignition"); err != nil {
		logger.Warn("Failed to register database metrics", "error", err.Error())
	}

	emailProvider := newEmailProvider(cfg.Email)
	defer emailProvider.Close()

	application, err := New(cfg, gormDB, emailProvider)
	if err != nil {
		logger.Fatal("Failed to initialize application", "error", err.Error())
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	workers.NewBookingWorker(
		gormDB,
		repositories.NewBookingRepository(),
		time.Duration(cfg.Workers.BookingAutoCompleteMinutes)*time.Minute,
	).Start(workerCtx)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err.Error())
	}

	// дожидаемся писем, поставленных в очередь до остановки
	application.Services.Notifier.Wait()
	logger.Info("Server exited")
}

// New собирает хранилище, сервисы, хендлеры и роутер.
// БД и email-провайдер приходят снаружи, тесты подставляют sqlite и запись писем в память.
func New(cfg *config.Config, gormDB *gorm.DB, emailProvider email.Provider) (*App, error) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		AccountID:  cfg.Storage.AccountID,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour, cfg.JWT.Issuer)

	// 1. Сервисы
	serviceContainer := services.NewServiceContainer(services.Dependencies{
		Tokens:    tokens,
		Storage:   storageInstance,
		Processor: imageprocessor.NewProcessor(cfg.Upload.ImageQuality),
		Email:     emailProvider,
		Avatar: services.AvatarConfig{
			MaxSize: cfg.Upload.MaxAvatarSize,
			Side:    cfg.Upload.AvatarSide,
		},
	})

	// 2. Хендлеры
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New(), sqlDB)

	// 3. Gin
	ginRouter := initializeGinRouter(gormDB, cfg)

	opts := routes.Options{EnableSwagger: cfg.Server.Env != config.EnvProduction}
	if local, ok := storageInstance.(*storage.LocalStorage); ok {
		opts.FilesDir = local.BasePath()
	}
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(tokens), opts)

	return &App{
		Router:   ginRouter,
		Services: serviceContainer,
		Storage:  storageInstance,
	}, nil
}

func initializeGinRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()
	// файл сверх лимита уходит во временный файл на диске, а не в память
	router.MaxMultipartMemory = cfg.Upload.MaxAvatarSize
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// newEmailProvider: без SMTP_HOST письма не отправляются, только логируются
func newEmailProvider(cfg config.EmailConfig) email.Provider {
	if cfg.SMTPHost == "" {
		logger.Warn("SMTP is not configured. Email notifications are disabled.")
		return email.NewNoopProvider()
	}

	provider := email.NewSMTPProvider(email.SMTPConfig{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromEmail: cfg.FromEmail,
		FromName:  cfg.FromName,
		UseTLS:    cfg.UseTLS,
		Timeout:   10 * time.Second,
	}, email.NewTemplateManager())
	if err := provider.Validate(); err != nil {
		logger.Warn("Invalid SMTP configuration, email notifications are disabled", "error", err.Error())
		return email.NewNoopProvider()
	}
	return provider
}
