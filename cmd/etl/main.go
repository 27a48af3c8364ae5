// Command etl extracts the freight dashboard datasets from the source
// spreadsheet and writes them as JSON documents.
//
// With REFRESH_INTERVAL unset (or zero) it performs a single extraction run
// and exits, which is how the cron deployment invokes it. With a positive
// interval it runs as a long-lived service with health, readiness, and
// metrics endpoints.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/freightdash/dashboard-etl/internal/adapter/httpserver"
	"github.com/freightdash/dashboard-etl/internal/adapter/jsonstore"
	kafkaadapter "github.com/freightdash/dashboard-etl/internal/adapter/kafka"
	sheetsadapter "github.com/freightdash/dashboard-etl/internal/adapter/sheets"
	"github.com/freightdash/dashboard-etl/internal/catalog"
	"github.com/freightdash/dashboard-etl/internal/config"
	"github.com/freightdash/dashboard-etl/internal/observability"
	"github.com/freightdash/dashboard-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	if err := catalog.Validate(); err != nil {
		logger.Error("invalid section catalog", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher, err := sheetsadapter.NewClient(ctx, cfg.SpreadsheetID, cfg.CredentialJSON, logger)
	if err != nil {
		logger.Error("failed to create sheets client", "error", err)
		os.Exit(1)
	}

	store, err := jsonstore.NewStore(cfg.OutputDir)
	if err != nil {
		logger.Error("failed to create dataset store", "error", err)
		os.Exit(1)
	}

	// Dataset republishing is feature-flagged via KAFKA_BROKERS.
	var publisher pipeline.DatasetPublisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled() {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("kafka republishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Info("kafka republishing disabled")
	}

	p := pipeline.New(fetcher, store, publisher, logger, metrics,
		cfg.FetchTimeout, cfg.RefreshInterval)

	if cfg.RefreshInterval <= 0 {
		// One-shot mode: no HTTP surface, the exit code is the signal.
		err := p.RunOnce(ctx)
		closeWriter(writer, logger)
		if err != nil {
			logger.Error("extraction run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	srv := httpserver.NewServer(cfg.HTTPAddr, p, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	closeWriter(writer, logger)

	logger.Info("shutdown complete")
}

func closeWriter(writer *kafkaadapter.Writer, logger *slog.Logger) {
	if writer == nil {
		return
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}
}
