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

	"booking/application/health"
	"booking/application/pages"
	"booking/application/tickets"
	"booking/common"
	"booking/config"
	"booking/database"
	"booking/middleware"
	"booking/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	z := NewLogger(cfg)
	defer z.Sync()

	if !envLoaded {
		z.Info("⚠️  No .env file found, using environment variables")
	}

	// The store lives for the whole process and is closed once on shutdown.
	db, err := database.Open(cfg.Database, z)
	if err != nil {
		z.Fatal("Failed to setup database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			z.Error("Failed to close database", zap.Error(err))
		}
	}()

	r, err := SetupRouter(cfg, db, z)
	if err != nil {
		z.Fatal("Failed to setup router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      middleware.MethodOverride(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		z.Info(fmt.Sprintf("🚀 Server starting on http://localhost:%s", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			z.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	z.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		z.Error("Server shutdown failed", zap.Error(err))
	}
}

func NewLogger(cfg *config.Config) *zap.Logger {
	var zapConfig zap.Config
	if cfg.Server.Mode == gin.DebugMode {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.Logger.Level); err == nil {
		zapConfig.Level = zap.NewAtomicLevelAt(level)
	}

	zapLogger, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}

	return zapLogger
}

func SetupRouter(cfg *config.Config, db *gorm.DB, z *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestInit())
	r.Use(middleware.ResponseInit(z))
	r.Use(middleware.AccessLog(z))
	r.Use(middleware.Sessions(cfg.Session))

	if err := views.Install(r); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	healthHandler := health.NewHandler(health.NewService(health.NewRepository(db)))

	ticketsRepo := tickets.NewRepository(db)
	ticketsSvc := tickets.NewService(ticketsRepo, z)
	ticketsHandler := tickets.NewHandler(ticketsSvc)

	api := r.Group("")
	pages.NewHandler().RegisterRoutes(api)
	healthHandler.RegisterRoutes(api)
	ticketsHandler.RegisterRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		middleware.Send(c)(middleware.Response{
			Error: common.NewNotFoundError("Halaman tidak ditemukan", nil),
		})
	})

	return r, nil
}
