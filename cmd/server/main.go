package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/stockdesk/dashboard/internal/config"
	"github.com/stockdesk/dashboard/internal/repository/mongodb"
	"github.com/stockdesk/dashboard/internal/repository/sheets"
	"github.com/stockdesk/dashboard/internal/scheduler"
	"github.com/stockdesk/dashboard/internal/server/handlers"
	"github.com/stockdesk/dashboard/internal/server/router"
	"github.com/stockdesk/dashboard/internal/service/analytics"
	"github.com/stockdesk/dashboard/internal/service/catalog"
	"github.com/stockdesk/dashboard/internal/service/digest"
	"github.com/stockdesk/dashboard/internal/service/inventory"
	"github.com/stockdesk/dashboard/internal/session"
	"github.com/stockdesk/dashboard/pkg/clients/backend"
	"github.com/stockdesk/dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	apiClient := backend.NewClient(cfg.Backend.BaseURL)

	var sessionStore session.Store
	if cfg.Session.Store == config.SessionStoreMongo {
		mongoStore, err := mongodb.NewSessionStore(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb session store", zap.Error(err))
		}
		defer func() {
			if err := mongoStore.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		sessionStore = mongoStore
	} else {
		sessionStore = session.NewMemoryStore()
	}

	catalogSvc := catalog.NewService(apiClient, baseLogger.Named("svc.catalog"))
	inventorySvc := inventory.NewService(apiClient, baseLogger.Named("svc.inventory"))
	analyticsSvc := analytics.NewService(apiClient, baseLogger.Named("svc.analytics"))

	engine := router.New(router.Handlers{
		Auth:      handlers.NewAuthHandler(apiClient, sessionStore, cfg.Session.CookieName, baseLogger.Named("handlers.auth")),
		Catalog:   handlers.NewCatalogHandler(catalogSvc, baseLogger.Named("handlers.catalog")),
		Inventory: handlers.NewInventoryHandler(inventorySvc, baseLogger.Named("handlers.inventory")),
		Analytics: handlers.NewAnalyticsHandler(analyticsSvc, baseLogger.Named("handlers.analytics")),
	}, sessionStore, cfg.Session.CookieName, baseLogger.Named("router"))

	// The digest job needs its own backend credentials; without them the
	// scheduler stays off.
	var sched *scheduler.Scheduler
	if cfg.Alerts.ServiceToken != "" {
		var exporter sheets.Exporter
		if cfg.SheetsEnabled() {
			sheetExporter, err := sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
			if err != nil {
				baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
			}
			exporter = sheetExporter
		}

		digestSvc := digest.NewService(apiClient, exporter, cfg.Alerts.ServiceToken, baseLogger.Named("svc.digest"))
		sched = scheduler.NewScheduler(cfg.Alerts, digestSvc, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	} else {
		baseLogger.Warn("alert service token missing, low stock digest disabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
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
