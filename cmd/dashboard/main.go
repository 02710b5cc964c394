package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/oakbridge/abc-dashboard/api/swagger"
	"github.com/oakbridge/abc-dashboard/internal/handler"
	internalmw "github.com/oakbridge/abc-dashboard/internal/middleware"
	"github.com/oakbridge/abc-dashboard/internal/service"
	"github.com/oakbridge/abc-dashboard/internal/session"
	"github.com/oakbridge/abc-dashboard/internal/store"
	"github.com/oakbridge/abc-dashboard/pkg/config"
	"github.com/oakbridge/abc-dashboard/pkg/logger"
	corsmiddleware "github.com/oakbridge/abc-dashboard/pkg/middleware/cors"
	reqidmiddleware "github.com/oakbridge/abc-dashboard/pkg/middleware/requestid"
)

// @title ABC Incident Dashboard API
// @version 1.0.0
// @description Role-based ABC incident logging and analytics for behaviour-support staff
// @BasePath /api/v1
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

	directory := store.NewDirectory(store.SeedStaff(), store.SeedStudents())
	incidents := store.NewIncidentLog()
	seeder := store.NewSeeder(cfg.Seed.RandomSeed)
	if err := seeder.Populate(incidents, directory, cfg.Seed.Count, time.Now()); err != nil {
		logr.Sugar().Fatalw("failed to seed incident table", "error", err)
	}
	logr.Info("incident_table_seeded", zap.Int("rows", incidents.Len()))

	sessions := session.NewManager(cfg.Sessions.IdleTimeout, cfg.Sessions.MaxSessions)
	navRouter := session.NewRouter()

	metricsSvc := service.NewMetricsService(sessions.Count)
	metricsSvc.SetIncidentRows(incidents.Len())

	validate := validator.New()
	directorySvc := service.NewDirectoryService(directory)
	analyticsSvc := service.NewAnalyticsService(incidents, metricsSvc, logr, cfg.Analytics.WindowDays)
	submissionSvc := service.NewSubmissionService(incidents, directory, validate, metricsSvc, logr)
	exportSvc := service.NewExportService(analyticsSvc, directorySvc, logr, cfg.Reports.Title)

	sessionHandler := handler.NewSessionHandler(navRouter, directorySvc)
	directoryHandler := handler.NewDirectoryHandler(directorySvc, analyticsSvc)
	incidentHandler := handler.NewIncidentHandler(submissionSvc, analyticsSvc)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc, cfg.Analytics.TopN)
	reportHandler := handler.NewReportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmw.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(internalmw.Session(sessions))
	{
		api.GET("/session", sessionHandler.State)
		api.POST("/session/profile", sessionHandler.SelectProfile)
		api.POST("/session/navigate", sessionHandler.Navigate)

		api.GET("/staff", directoryHandler.Staff)
		api.GET("/students", directoryHandler.Students)
		api.GET("/students/:id", directoryHandler.Student)
		api.GET("/catalog", directoryHandler.Catalog)

		api.POST("/incidents", incidentHandler.Submit)
		api.GET("/incidents", incidentHandler.List)

		api.GET("/analytics/summary", analyticsHandler.Summary)
		api.GET("/analytics/trend", analyticsHandler.Trend)
		api.GET("/analytics/breakdown", analyticsHandler.Breakdown)

		if cfg.Reports.Enabled {
			api.GET("/reports/incidents.csv", reportHandler.CSV)
			api.GET("/reports/incidents.pdf", reportHandler.PDF)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
