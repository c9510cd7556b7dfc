package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/filipe4ndrade/dados-sds-provisorios/internal/adapter/http"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/config"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/dataset"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/export"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/geo"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	store := dataset.NewStore(cfg.DataDir, logger, metrics)

	srv := httpadapter.NewServer(httpadapter.Options{
		Addr:        cfg.HTTPAddr,
		Source:      store,
		Ready:       store,
		Exporter:    export.NewExporter(nil),
		Lookup:      geo.Municipalities,
		Logger:      logger,
		Metrics:     metrics,
		DefaultTopN: cfg.DefaultTopN,
		MaxTopN:     cfg.MaxTopN,
		CORSOrigins: cfg.CORSOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("dashboard started", "data_dir", cfg.DataDir, "datasets", len(dataset.Catalog()))

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
