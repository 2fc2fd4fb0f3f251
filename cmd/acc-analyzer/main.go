package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/acc-analyzer/api/swagger"
	"github.com/noah-isme/acc-analyzer/internal/handler"
	"github.com/noah-isme/acc-analyzer/internal/middleware"
	"github.com/noah-isme/acc-analyzer/internal/service"
	"github.com/noah-isme/acc-analyzer/pkg/config"
	"github.com/noah-isme/acc-analyzer/pkg/export"
	"github.com/noah-isme/acc-analyzer/pkg/logger"
	corsmiddleware "github.com/noah-isme/acc-analyzer/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/acc-analyzer/pkg/middleware/requestid"
)

// @title ACC/ACEX Analyzer API
// @version 1.0.0
// @description Checks complementary and extension activity hours against Resolução CONSEPE Nº 008/2024.
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	analysisSvc := service.NewAnalysisService(validator.New(), metricsSvc, logr.Named("analysis"), service.AnalysisServiceConfig{
		MinEntryYear:     cfg.Analysis.MinEntryYear,
		MaxEntryYear:     cfg.Analysis.MaxEntryYear,
		MaxDeclaredHours: cfg.Analysis.MaxDeclaredHours,
	})

	analysisHandler := handler.NewAnalysisHandler(analysisSvc, nil)
	if cfg.Exports.Enabled {
		exportSvc := service.NewExportService(analysisSvc, metricsSvc, logr.Named("export"), export.NewCSVExporter(export.WithBOM()), export.NewPDFExporter())
		analysisHandler = handler.NewAnalysisHandler(analysisSvc, exportSvc)
	}
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc, "/metrics"))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	analysisHandler.RegisterRoutes(r.Group(cfg.APIPrefix))

	if cfg.Env != config.EnvProduction && cfg.Docs.Enabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "exports", cfg.Exports.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}
