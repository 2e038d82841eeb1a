package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ekomarov/docsight/internal/analysis/summarize"
	"github.com/ekomarov/docsight/internal/config"
	"github.com/ekomarov/docsight/internal/core/ports"
	"github.com/ekomarov/docsight/internal/core/usecase"
	"github.com/ekomarov/docsight/internal/infrastructure/cache/redis"
	"github.com/ekomarov/docsight/internal/infrastructure/extractor/pdflocal"
	"github.com/ekomarov/docsight/internal/infrastructure/extractor/remote"
	"github.com/ekomarov/docsight/internal/infrastructure/nlptext"
	"github.com/ekomarov/docsight/internal/infrastructure/queue/nats"
	"github.com/ekomarov/docsight/internal/infrastructure/repository/postgres"
	"github.com/ekomarov/docsight/internal/infrastructure/resilience"
	"github.com/ekomarov/docsight/internal/infrastructure/storage/localfs"
)

// App wires shared dependencies for both binaries. Postgres, NATS and
// Redis are all optional at boot: the pipeline runs degraded without
// them instead of refusing to start.
type App struct {
	Config config.Config
	Log    *slog.Logger

	Queue *nats.Queue

	FileUC      ports.FileAnalyzer
	TextUC      ports.TextAnalyzer
	HistoryUC   ports.HistoryReader
	AnalyticsUC ports.AnalyticsReader
	InsightsUC  *usecase.InsightsUseCase

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	connector := postgres.NewConnector(cfg.PostgresDSN, log)
	repo := postgres.NewRecordRepository(connector)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Warn("schema setup deferred, database unreachable", "error", err)
	}

	queue, err := nats.New(cfg.NATSURL, cfg.NATSSubject)
	if err != nil {
		log.Warn("message queue unavailable, insights refresh events disabled", "error", err)
		queue = nil
	}

	var cache ports.InsightsCache
	redisClient, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Warn("redis unavailable, insights served uncached", "error", err)
	} else {
		cache = redis.NewInsightsCache(redisClient, time.Duration(cfg.InsightsCacheTTLSeconds)*time.Second)
	}

	spool, err := localfs.NewSpool(cfg.SpoolDir)
	if err != nil {
		return nil, fmt.Errorf("init upload spool: %w", err)
	}

	toolkit := nlptext.New(log)
	engine := summarize.New(toolkit)

	remoteExtractor := remote.NewResilient(
		remote.New(cfg.ExtractorBaseURL, cfg.ExtractorAPIKey, time.Duration(cfg.ExtractorTimeoutSeconds)*time.Second),
		resilience.NewExecutor(resilience.ExtractionConfig()),
	)
	localExtractor := pdflocal.New()

	var publisher ports.EventPublisher
	if queue != nil {
		publisher = queue
	}

	return &App{
		Config: cfg,
		Log:    log,
		Queue:  queue,

		FileUC:      usecase.NewAnalyzeFileUseCase(remoteExtractor, localExtractor, repo, spool, publisher, engine, log),
		TextUC:      usecase.NewAnalyzeTextUseCase(repo, publisher, engine, log),
		HistoryUC:   usecase.NewHistoryUseCase(repo, log),
		AnalyticsUC: usecase.NewAnalyticsUseCase(repo, log),
		InsightsUC:  usecase.NewInsightsUseCase(repo, cache, toolkit, log),

		closeFn: func() {
			if queue != nil {
				queue.Close()
			}
			if redisClient != nil {
				_ = redisClient.Close()
			}
			_ = connector.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
