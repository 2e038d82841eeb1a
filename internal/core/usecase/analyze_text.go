package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ekomarov/docsight/internal/analysis/classify"
	"github.com/ekomarov/docsight/internal/analysis/summarize"
	"github.com/ekomarov/docsight/internal/core/domain"
	"github.com/ekomarov/docsight/internal/core/ports"
)

const minManualTextChars = 10

var errTextTooShort = errors.New("text must be at least 10 characters")

// AnalyzeTextUseCase runs the manual-entry pipeline. It never fails past
// input validation: summarization degrades internally instead.
type AnalyzeTextUseCase struct {
	repo      ports.RecordRepository
	publisher ports.EventPublisher
	engine    *summarize.Engine
	log       *slog.Logger
	now       func() time.Time
}

func NewAnalyzeTextUseCase(
	repo ports.RecordRepository,
	publisher ports.EventPublisher,
	engine *summarize.Engine,
	log *slog.Logger,
) *AnalyzeTextUseCase {
	return &AnalyzeTextUseCase{
		repo:      repo,
		publisher: publisher,
		engine:    engine,
		log:       log,
		now:       time.Now,
	}
}

func (uc *AnalyzeTextUseCase) AnalyzeText(ctx context.Context, fileName, text string) (domain.AnalysisResult, error) {
	start := uc.now()

	if len(strings.TrimSpace(text)) < minManualTextChars {
		return domain.AnalysisResult{}, domain.WrapError(domain.ErrInvalidInput, "analyze_text",
			errTextTooShort)
	}

	displayName := strings.TrimSpace(fileName)
	if displayName == "" {
		displayName = "Manual Text Input - " + start.UTC().Format("2006-01-02 15:04")
	}

	safeText := text
	if len(safeText) > maxAnalyzeChars {
		safeText = safeText[:maxAnalyzeChars]
	}

	// Manual mode cannot fail: the engine degrades to templated output.
	summary, _ := uc.engine.Summarize(safeText, summarize.ModeManual)

	docType := classify.DocumentType(displayName, text, classify.ModeManual)

	result := domain.AnalysisResult{
		FileName:         displayName,
		Summary:          summary,
		ProcessingMethod: domain.MethodManualText,
		DocumentType:     docType,
		FileSize:         0,
		TextLength:       len(text),
	}
	uc.persist(ctx, domain.Record{
		ID:               uuid.NewString(),
		FileName:         result.FileName,
		Summary:          result.Summary,
		ProcessingMethod: result.ProcessingMethod,
		DocumentType:     result.DocumentType,
		TextLength:       result.TextLength,
		ProcessingTimeMs: uc.now().Sub(start).Milliseconds(),
		Success:          true,
		CreatedAt:        uc.now().UTC(),
	})
	return result, nil
}

func (uc *AnalyzeTextUseCase) persist(ctx context.Context, rec domain.Record) {
	if err := uc.repo.Create(ctx, rec); err != nil {
		uc.log.Warn("record save failed, continuing without persistence", "file", rec.FileName, "error", err)
		return
	}
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishRecordCreated(ctx, rec.ID); err != nil {
		uc.log.Warn("record event publish failed", "record_id", rec.ID, "error", err)
	}
}
