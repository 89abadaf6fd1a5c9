// Command api runs the jyotish analysis HTTP service.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jyotish-backend/internal/application/ports"
	"jyotish-backend/internal/application/services"
	"jyotish-backend/internal/config"
	"jyotish-backend/internal/infrastructure/ephemeris"
	"jyotish-backend/internal/infrastructure/observability"
	"jyotish-backend/internal/infrastructure/persistence/memory"
	resthttp "jyotish-backend/internal/interfaces/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.String("environment", string(cfg.Environment)),
		zap.Strings("sources", cfg.LoadedFrom))

	metrics := observability.NewCollector("jyotish")

	store := memory.NewChartStore(cfg.Storage.ChartTTL.Std(), cfg.Storage.CleanupInterval.Std(), cfg.Storage.MaxCharts)
	defer store.Close()

	var provider ports.EphemerisProvider = ephemeris.NewApproximateProvider()
	if cfg.Ephemeris.Provider == "remote" {
		provider = ephemeris.NewRemoteProvider(cfg.Ephemeris, ephemeris.NewApproximateProvider(), metrics, logger)
	}

	chartService := services.NewChartService(provider, store, metrics, logger)
	analysisService := services.NewAnalysisService(store, cfg.Analysis.Thresholds, metrics, logger)
	relocationService := services.NewRelocationService(store, metrics, logger)

	watcher, err := config.NewWatcher(cfg, config.NewLoader(os.Getenv("CONFIG_DIR"), cfg.Environment), logger)
	if err != nil {
		logger.Fatal("failed to start config watcher", zap.Error(err))
	}
	defer watcher.Stop()
	watcher.OnChange(func(updated *config.Config) {
		analysisService.UpdateThresholds(updated.Analysis.Thresholds)
	})

	handler := resthttp.NewHandler(chartService, analysisService, relocationService, logger)
	router := resthttp.NewRouter(handler, metrics, logger, cfg.Server.RequestTimeout.Std())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
		IdleTimeout:  cfg.Server.IdleTimeout.Std(),
	}

	go func() {
		logger.Info("starting server",
			zap.String("address", srv.Addr),
			zap.String("ephemeris", cfg.Ephemeris.Provider))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

// newLogger builds a zap logger from the logging configuration.
func newLogger(cfg config.Logging) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
