package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/underwriting-service/internal/config"
	"github.com/Dan9191/underwriting-service/internal/handler"
	"github.com/Dan9191/underwriting-service/internal/middleware"
	"github.com/Dan9191/underwriting-service/internal/repository"
	"github.com/Dan9191/underwriting-service/internal/scheduler"
	"github.com/Dan9191/underwriting-service/internal/service"
	"github.com/Dan9191/underwriting-service/internal/utils/email"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Rate table and action catalog
	assumptions, err := config.LoadAssumptions(cfg.AssumptionsFile, time.Now().Year())
	if err != nil {
		logger.Fatalf("Failed to load assumptions: %v", err)
	}
	catalog, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		logger.Fatalf("Failed to load action catalog: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}
	sender := email.NewSender(cfg, logger)
	svc := service.NewService(repo, sender, logger, cfg, assumptions, catalog)
	h := handler.NewHandler(svc, logger)

	// Periodic re-analysis of the stored portfolio
	sched := scheduler.New(ctx, svc, logger, 30*time.Minute)
	if cfg.BatchSchedule != "" {
		if _, err := sched.Schedule(cfg.BatchSchedule); err != nil {
			logger.Fatalf("Invalid BATCH_SCHEDULE %q: %v", cfg.BatchSchedule, err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// Setup router
	r := handler.Router(h, middleware.AuthMiddleware(cfg))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Graceful shutdown failed: %v", err)
		}
	}()

	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
	logger.Info("Server stopped")
}
