package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/ProMBZ/Teacher-Project/internal/config"
	"github.com/ProMBZ/Teacher-Project/internal/scheduler"
	"github.com/ProMBZ/Teacher-Project/internal/server/handlers"
	"github.com/ProMBZ/Teacher-Project/internal/server/router"
	logbooksvc "github.com/ProMBZ/Teacher-Project/internal/service/logbook"
	remindersvc "github.com/ProMBZ/Teacher-Project/internal/service/reminder"
	reportsvc "github.com/ProMBZ/Teacher-Project/internal/service/report"
	"github.com/ProMBZ/Teacher-Project/pkg/clients/gemini"
	"github.com/ProMBZ/Teacher-Project/pkg/logger"
)

func main() {
	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	cfg, err := config.Load("")
	if err != nil {
		// GOOGLE_API_KEY missing lands here: no fallback provider, halt.
		baseLogger.Fatal("invalid configuration", zap.Error(err))
	}

	aiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL)
	baseLogger.Info("gemini client enabled", zap.String("model", cfg.Gemini.Model))

	logbookSvc := logbooksvc.NewService(aiClient, baseLogger.Named("svc.logbook"))
	reminderSvc := remindersvc.NewService(cfg.Reminder.Hour, baseLogger.Named("svc.reminder"))
	renderer := reportsvc.NewRenderer(baseLogger.Named("svc.report"))

	logbookHandler := handlers.NewLogbookHandler(logbookSvc, renderer, reminderSvc, baseLogger.Named("handlers.logbook"))
	engine := router.New(logbookHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reminder, logbookSvc, reminderSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
