package usecase

import (
	"context"
	"log/slog"

	"github.com/ekomarov/docsight/internal/analysis/classify"
	"github.com/ekomarov/docsight/internal/core/domain"
	"github.com/ekomarov/docsight/internal/core/ports"
)

const historyLimit = 100

// HistoryUseCase lists recent records. Each read first backfills legacy
// rows missing the analytics fields (a no-op once all rows carry them),
// and re-derives the document type for records still tagged Other whose
// summary matches a known category.
type HistoryUseCase struct {
	repo  ports.RecordRepository
	log   *slog.Logger
	limit int
}

func NewHistoryUseCase(repo ports.RecordRepository, log *slog.Logger) *HistoryUseCase {
	return &HistoryUseCase{repo: repo, log: log, limit: historyLimit}
}

func (uc *HistoryUseCase) History(ctx context.Context) ([]domain.Record, error) {
	if updated, err := uc.repo.BackfillLegacyFields(ctx); err != nil {
		uc.log.Warn("legacy backfill failed", "error", err)
	} else if updated > 0 {
		uc.log.Info("backfilled legacy records", "count", updated)
	}

	records, err := uc.repo.ListRecent(ctx, uc.limit)
	if err != nil {
		return nil, err
	}

	for i, rec := range records {
		if rec.DocumentType != domain.TypeOther || rec.Summary == "" {
			continue
		}
		if retagged := classify.DocumentType(rec.FileName, rec.Summary, classify.ModeManual); retagged != domain.TypeOther {
			records[i].DocumentType = retagged
		}
	}
	return records, nil
}
