package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/nmc-egov/civic-portal-api/api/swagger"
	"github.com/nmc-egov/civic-portal-api/internal/handler"
	"github.com/nmc-egov/civic-portal-api/internal/middleware"
	"github.com/nmc-egov/civic-portal-api/internal/repository"
	"github.com/nmc-egov/civic-portal-api/internal/service"
	"github.com/nmc-egov/civic-portal-api/pkg/cache"
	"github.com/nmc-egov/civic-portal-api/pkg/config"
	"github.com/nmc-egov/civic-portal-api/pkg/database"
	"github.com/nmc-egov/civic-portal-api/pkg/logger"
	corsmiddleware "github.com/nmc-egov/civic-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/nmc-egov/civic-portal-api/pkg/middleware/requestid"
	"github.com/nmc-egov/civic-portal-api/pkg/session"
	"github.com/nmc-egov/civic-portal-api/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Civic Portal API
// @version 1.0.0
// @description Municipal e-governance portal backend
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}

	store, localStore, err := storage.New(context.Background(), cfg.Storage)
	if err != nil {
		logr.Sugar().Fatalw("failed to init attachment storage", "error", err)
	}

	validate := validator.New()
	sessions := session.NewManager(redisClient, cfg.Session)

	citizenRepo := repository.NewCitizenRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	eventRepo := repository.NewEventPermissionRepository(db)
	healthCampRepo := repository.NewHealthCampRepository(db)
	newsRepo := repository.NewNewsRepository(db)

	metricsSvc := service.NewMetricsService()
	notifier := service.NewNotificationService(service.NewSMTPSender(cfg.Mail), cfg.Mail.From, logr, metricsSvc)
	authSvc := service.NewAuthService(citizenRepo, notifier, validate, logr, cfg.Admin)
	complaintSvc := service.NewComplaintService(complaintRepo, citizenRepo, notifier, validate, logr, metricsSvc)
	eventSvc := service.NewEventPermissionService(eventRepo, citizenRepo, notifier, validate, logr, metricsSvc)
	healthCampSvc := service.NewHealthCampService(healthCampRepo, citizenRepo, notifier, validate, logr, metricsSvc)
	newsSvc := service.NewNewsService(newsRepo, logr)
	dashboardSvc := service.NewDashboardService(complaintRepo, healthCampRepo, eventRepo, citizenRepo, redisClient, cfg.Dashboard.CacheTTL, logr)
	exportSvc := service.NewExportService(complaintRepo, citizenRepo, nil, nil, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handlers := handler.Handlers{
		Auth:            handler.NewAuthHandler(authSvc, sessions, cfg.Admin.Username),
		Complaints:      handler.NewComplaintHandler(complaintSvc, store),
		EventPermission: handler.NewEventPermissionHandler(eventSvc, store),
		HealthCamps:     handler.NewHealthCampHandler(healthCampSvc, store),
		News:            handler.NewNewsHandler(newsSvc),
		Dashboard:       handler.NewDashboardHandler(dashboardSvc),
		Citizens:        handler.NewCitizenAdminHandler(citizenRepo),
		Exports:         handler.NewExportHandler(exportSvc),
		Sessions:        sessions,
		AdminUsername:   cfg.Admin.Username,
		Metrics:         metricsSvc,
		DB:              db,
		Redis:           redisClient,
	}
	if localStore != nil {
		handlers.Files = handler.NewFilesHandler(localStore)
	}
	handler.RegisterRoutes(r, handlers)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Sugar().Errorw("forced shutdown", "error", err)
	}

	if err := db.Close(); err != nil {
		logr.Sugar().Warnw("closing postgres", "error", err)
	}
	if err := redisClient.Close(); err != nil {
		logr.Sugar().Warnw("closing redis", "error", err)
	}
	logr.Info("server stopped")
}
