package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/warungkas/warungkas/internal/app"
	"github.com/warungkas/warungkas/internal/assets"
	"github.com/warungkas/warungkas/internal/catalog"
	"github.com/warungkas/warungkas/internal/ledger"
	"github.com/warungkas/warungkas/internal/payroll"
	"github.com/warungkas/warungkas/internal/platform/cache"
	"github.com/warungkas/warungkas/internal/pos"
	"github.com/warungkas/warungkas/internal/reports"
	reportshttp "github.com/warungkas/warungkas/internal/reports/http"
	"github.com/warungkas/warungkas/internal/store"
	"github.com/warungkas/warungkas/jobs"
	"github.com/warungkas/warungkas/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	st := store.New(redisClient)
	reportCache := reports.NewCache(redisClient, cfg.ReportCacheTTL)

	catalogService := catalog.NewService(st, reportCache)
	catalogHandler := catalog.NewHandler(logger, catalogService)

	posService := pos.NewService(st, st, reportCache)
	posHandler := pos.NewHandler(logger, posService)

	payrollService := payroll.NewService(st, reportCache)
	payrollHandler := payroll.NewHandler(logger, payrollService)

	assetsService := assets.NewService(st, reportCache)
	assetsHandler := assets.NewHandler(logger, assetsService)

	ledgerService := ledger.NewService(st, reportCache)
	ledgerHandler := ledger.NewHandler(logger, ledgerService)

	reportsService := reports.NewService(st, reportCache)

	var pdfClient *report.Client
	if cfg.GotenbergURL != "" {
		pdfClient = report.NewClient(cfg.GotenbergURL)
		if err := pdfClient.Ping(ctx); err != nil {
			logger.Warn("gotenberg ping", slog.Any("error", err))
		}
	}
	reportsHandler := reportshttp.NewHandler(logger, reportsService, pdfClient)
	documentHandler := report.NewHandler(pdfClient, logger, payrollService, posService)

	adminHandler := store.NewHandler(logger, st, reportCache)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobsHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		CatalogHandler: catalogHandler,
		POSHandler:     posHandler,
		PayrollHandler: payrollHandler,
		AssetsHandler:  assetsHandler,
		LedgerHandler:  ledgerHandler,
		ReportsHandler: reportsHandler,
		AdminHandler:   adminHandler,
		JobsHandler:    jobsHandler,
		ReportHandler:  documentHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
