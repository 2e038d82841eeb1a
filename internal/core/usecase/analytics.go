package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/ekomarov/docsight/internal/core/domain"
	"github.com/ekomarov/docsight/internal/core/ports"
)

// AnalyticsUseCase serves the corpus statistics roll-up. When the
// database is unavailable the caller gets an empty-but-well-formed
// snapshot with a warning instead of an error.
type AnalyticsUseCase struct {
	repo ports.RecordRepository
	log  *slog.Logger
	now  func() time.Time
}

func NewAnalyticsUseCase(repo ports.RecordRepository, log *slog.Logger) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo, log: log, now: time.Now}
}

func (uc *AnalyticsUseCase) Analytics(ctx context.Context) (domain.AnalyticsSnapshot, error) {
	if updated, err := uc.repo.BackfillLegacyFields(ctx); err != nil {
		uc.log.Warn("legacy backfill failed", "error", err)
	} else if updated > 0 {
		uc.log.Info("backfilled legacy records", "count", updated)
	}

	snapshot, err := uc.repo.Analytics(ctx, uc.now())
	if err != nil {
		uc.log.Warn("analytics aggregation failed, serving empty snapshot", "error", err)
		return domain.EmptyAnalytics("analytics temporarily unavailable"), nil
	}
	return snapshot, nil
}
