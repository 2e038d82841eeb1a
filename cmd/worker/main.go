package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ekomarov/docsight/internal/bootstrap"
	"github.com/ekomarov/docsight/internal/config"
	"github.com/ekomarov/docsight/internal/observability/logging"
	"github.com/ekomarov/docsight/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger("worker", cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	if app.Queue == nil {
		log.Fatalf("worker requires the message queue, none available at %s", cfg.NATSURL)
	}

	workerMetrics := metrics.NewWorkerMetrics("worker")
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", workerMetrics.Handler())
	metricsMux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: metricsMux,
	}
	go func() {
		logger.Info("worker metrics listening", "port", cfg.WorkerMetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("worker metrics server error", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("worker subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeRecordCreated(ctx, func(handlerCtx context.Context, recordID string, publishedAt time.Time) error {
		refreshCtx, cancel := context.WithTimeout(handlerCtx, 2*time.Minute)
		defer cancel()

		if !publishedAt.IsZero() {
			workerMetrics.ObserveQueueLag("worker", time.Since(publishedAt))
		}

		workerMetrics.StartRefresh()
		start := time.Now()
		refreshErr := app.InsightsUC.Refresh(refreshCtx, recordID)
		workerMetrics.FinishRefresh("worker", time.Since(start), refreshErr)
		return refreshErr
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}
}
