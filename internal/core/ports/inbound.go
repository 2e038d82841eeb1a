package ports

import (
	"context"

	"github.com/ekomarov/docsight/internal/core/domain"
)

// FileAnalyzer is the inbound contract for the file-upload pipeline.
type FileAnalyzer interface {
	AnalyzeFile(ctx context.Context, fileName string, content []byte) (domain.AnalysisResult, error)
}

// TextAnalyzer is the inbound contract for the manual text pipeline.
type TextAnalyzer interface {
	AnalyzeText(ctx context.Context, fileName, text string) (domain.AnalysisResult, error)
}

// HistoryReader lists recently processed records.
type HistoryReader interface {
	History(ctx context.Context) ([]domain.Record, error)
}

// AnalyticsReader serves the corpus statistics roll-up.
type AnalyticsReader interface {
	Analytics(ctx context.Context) (domain.AnalyticsSnapshot, error)
}

// InsightsReader serves the word-cloud/sentiment/entity snapshot.
type InsightsReader interface {
	Insights(ctx context.Context) (domain.InsightsSnapshot, error)
}

// InsightsRefresher recomputes and caches the insights snapshot. Used by
// the worker when record-created events arrive.
type InsightsRefresher interface {
	Refresh(ctx context.Context, recordID string) error
}
