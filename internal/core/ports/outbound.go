package ports

import (
	"context"
	"time"

	"github.com/ekomarov/docsight/internal/core/domain"
)

// RecordRepository persists and reads document records.
type RecordRepository interface {
	Create(ctx context.Context, rec domain.Record) error
	ListRecent(ctx context.Context, limit int) ([]domain.Record, error)
	BackfillLegacyFields(ctx context.Context) (int64, error)
	Analytics(ctx context.Context, now time.Time) (domain.AnalyticsSnapshot, error)
}

// TextExtractor turns file bytes into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, content []byte, fileName string) (domain.Extraction, error)
}

// LanguageToolkit segments sentences and extracts named entities.
type LanguageToolkit interface {
	Sentences(text string) []string
	Entities(text string) domain.EntitySet
}

// EventPublisher announces newly persisted records.
type EventPublisher interface {
	PublishRecordCreated(ctx context.Context, recordID string) error
}

// InsightsCache stores the computed insights snapshot between refreshes.
type InsightsCache interface {
	Get(ctx context.Context) (domain.InsightsSnapshot, bool, error)
	Set(ctx context.Context, snapshot domain.InsightsSnapshot) error
}

// UploadSpool keeps uploads on disk while extraction runs.
type UploadSpool interface {
	Save(ctx context.Context, content []byte) (string, error)
	Remove(ctx context.Context, path string) error
}
