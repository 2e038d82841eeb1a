package usecase

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/ekomarov/docsight/internal/analysis/sentiment"
	"github.com/ekomarov/docsight/internal/analysis/wordfreq"
	"github.com/ekomarov/docsight/internal/core/domain"
	"github.com/ekomarov/docsight/internal/core/ports"
)

const (
	insightsCorpusLimit = 200
	wordCloudSize       = 50
	maxPeople           = 10
	maxPlaces           = 10
	maxOrganizations    = 10
	maxTopics           = 15
	maxTypeBreakdown    = 5
)

// InsightsUseCase serves the corpus-wide word-cloud/sentiment/entity
// snapshot. Reads go through the cache; a miss triggers a full
// recomputation over the most recent records. Database failures degrade
// to an empty snapshot with a warning rather than an error.
type InsightsUseCase struct {
	repo         ports.RecordRepository
	cache        ports.InsightsCache
	toolkit      ports.LanguageToolkit
	log          *slog.Logger
	cacheOutcome func(outcome string)
}

func NewInsightsUseCase(repo ports.RecordRepository, cache ports.InsightsCache, toolkit ports.LanguageToolkit, log *slog.Logger) *InsightsUseCase {
	return &InsightsUseCase{repo: repo, cache: cache, toolkit: toolkit, log: log}
}

// ObserveCacheOutcomes registers a callback that receives "hit", "miss" or
// "error" after every cache lookup. Used to feed the cache counter metric.
func (uc *InsightsUseCase) ObserveCacheOutcomes(fn func(outcome string)) {
	uc.cacheOutcome = fn
}

func (uc *InsightsUseCase) Insights(ctx context.Context) (domain.InsightsSnapshot, error) {
	if uc.cache != nil {
		snapshot, ok, err := uc.cache.Get(ctx)
		switch {
		case err != nil:
			uc.noteCacheOutcome("error")
			uc.log.Warn("insights cache read failed", "error", err)
		case ok:
			uc.noteCacheOutcome("hit")
			return snapshot, nil
		default:
			uc.noteCacheOutcome("miss")
		}
	}

	snapshot, err := uc.compute(ctx)
	if err != nil {
		uc.log.Warn("insights computation failed, serving empty snapshot", "error", err)
		return domain.EmptyInsights("insights temporarily unavailable"), nil
	}

	uc.store(ctx, snapshot)
	return snapshot, nil
}

// Refresh recomputes the snapshot and replaces the cached copy. Invoked
// from the worker when a record-created event arrives so interactive
// reads stay cheap.
func (uc *InsightsUseCase) Refresh(ctx context.Context, recordID string) error {
	snapshot, err := uc.compute(ctx)
	if err != nil {
		return err
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, snapshot); err != nil {
			return err
		}
	}
	uc.log.Info("insights snapshot refreshed",
		"trigger_record", recordID,
		"documents", snapshot.Metrics.TotalDocuments)
	return nil
}

func (uc *InsightsUseCase) compute(ctx context.Context) (domain.InsightsSnapshot, error) {
	records, err := uc.repo.ListRecent(ctx, insightsCorpusLimit)
	if err != nil {
		return domain.InsightsSnapshot{}, err
	}
	if len(records) == 0 {
		return domain.EmptyInsights(""), nil
	}

	summaries := make([]string, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, rec.Summary)
	}

	entities := uc.toolkit.Entities(strings.Join(summaries, " "))
	entities.People = capList(entities.People, maxPeople)
	entities.Places = capList(entities.Places, maxPlaces)
	entities.Organizations = capList(entities.Organizations, maxOrganizations)
	entities.Topics = capList(entities.Topics, maxTopics)

	return domain.InsightsSnapshot{
		WordCloud: wordfreq.Top(wordfreq.Frequencies(summaries), wordCloudSize),
		Sentiment: sentiment.AggregateCorpus(records),
		Entities:  entities,
		Metrics: domain.InsightMetrics{
			TotalDocuments: len(records),
			AvgTextLength:  averageSummaryLength(summaries),
			DocumentTypes:  typeBreakdown(records),
		},
	}, nil
}

func (uc *InsightsUseCase) noteCacheOutcome(outcome string) {
	if uc.cacheOutcome != nil {
		uc.cacheOutcome(outcome)
	}
}

func (uc *InsightsUseCase) store(ctx context.Context, snapshot domain.InsightsSnapshot) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(ctx, snapshot); err != nil {
		uc.log.Warn("insights cache write failed", "error", err)
	}
}

func capList(values []string, n int) []string {
	if values == nil {
		return []string{}
	}
	if len(values) > n {
		return values[:n]
	}
	return values
}

func averageSummaryLength(summaries []string) int {
	var total int
	for _, s := range summaries {
		total += len(s)
	}
	return int(math.Round(float64(total) / float64(len(summaries))))
}

func typeBreakdown(records []domain.Record) []domain.TypeCount {
	counts := make(map[domain.DocumentType]int)
	for _, rec := range records {
		counts[rec.DocumentType]++
	}
	breakdown := make([]domain.TypeCount, 0, len(counts))
	for t, c := range counts {
		breakdown = append(breakdown, domain.TypeCount{Type: t, Count: c})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Type < breakdown[j].Type
	})
	if len(breakdown) > maxTypeBreakdown {
		breakdown = breakdown[:maxTypeBreakdown]
	}
	return breakdown
}
