package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ekomarov/docsight/internal/analysis/classify"
	"github.com/ekomarov/docsight/internal/analysis/quality"
	"github.com/ekomarov/docsight/internal/analysis/summarize"
	"github.com/ekomarov/docsight/internal/core/domain"
	"github.com/ekomarov/docsight/internal/core/ports"
)

// maxAnalyzeChars bounds how much extracted text feeds the summarizer.
const maxAnalyzeChars = 6000

// AnalyzeFileUseCase runs the upload pipeline: extraction with fallback,
// quality gate, classification, summarization, then best-effort persist
// and event publish.
type AnalyzeFileUseCase struct {
	remote    ports.TextExtractor
	local     ports.TextExtractor
	repo      ports.RecordRepository
	spool     ports.UploadSpool
	publisher ports.EventPublisher
	engine    *summarize.Engine
	log       *slog.Logger
	now       func() time.Time
}

func NewAnalyzeFileUseCase(
	remote ports.TextExtractor,
	local ports.TextExtractor,
	repo ports.RecordRepository,
	spool ports.UploadSpool,
	publisher ports.EventPublisher,
	engine *summarize.Engine,
	log *slog.Logger,
) *AnalyzeFileUseCase {
	return &AnalyzeFileUseCase{
		remote:    remote,
		local:     local,
		repo:      repo,
		spool:     spool,
		publisher: publisher,
		engine:    engine,
		log:       log,
		now:       time.Now,
	}
}

func (uc *AnalyzeFileUseCase) AnalyzeFile(ctx context.Context, fileName string, content []byte) (domain.AnalysisResult, error) {
	start := uc.now()
	fileSize := int64(len(content))

	spoolPath, err := uc.spool.Save(ctx, content)
	if err != nil {
		uc.log.Warn("upload spool failed, continuing from memory", "file", fileName, "error", err)
	}
	defer func() {
		if err := uc.spool.Remove(context.WithoutCancel(ctx), spoolPath); err != nil {
			uc.log.Warn("spool cleanup failed", "path", spoolPath, "error", err)
		}
	}()

	extraction, err := uc.extract(ctx, content, fileName)
	if err != nil {
		pipeErr := domain.WrapError(domain.ErrExtractionFailed, "analyze_file", err)
		uc.recordFailure(ctx, fileName, fileSize, 0, start, pipeErr)
		return domain.AnalysisResult{}, pipeErr
	}

	textLength := len(extraction.Text)
	if verdict := quality.Validate(extraction.Text); !verdict.Valid {
		pipeErr := domain.WrapError(domain.ErrTextQualityPoor, "analyze_file",
			fmt.Errorf("%s", verdict.Detail))
		uc.recordFailure(ctx, fileName, fileSize, textLength, start, pipeErr)
		return domain.AnalysisResult{}, pipeErr
	}

	safeText := extraction.Text
	if len(safeText) > maxAnalyzeChars {
		safeText = safeText[:maxAnalyzeChars]
	}

	summary, err := uc.engine.Summarize(safeText, summarize.ModeUpload)
	if err != nil {
		uc.recordFailure(ctx, fileName, fileSize, textLength, start, err)
		return domain.AnalysisResult{}, err
	}

	docType := classify.DocumentType(fileName, extraction.Text, classify.ModeUpload)

	result := domain.AnalysisResult{
		FileName:         fileName,
		Summary:          summary,
		ProcessingMethod: extraction.Method,
		DocumentType:     docType,
		FileSize:         fileSize,
		TextLength:       textLength,
	}
	uc.persist(ctx, domain.Record{
		ID:               uuid.NewString(),
		FileName:         result.FileName,
		Summary:          result.Summary,
		ProcessingMethod: result.ProcessingMethod,
		DocumentType:     result.DocumentType,
		FileSize:         result.FileSize,
		TextLength:       result.TextLength,
		ProcessingTimeMs: uc.now().Sub(start).Milliseconds(),
		Success:          true,
		CreatedAt:        uc.now().UTC(),
	})
	return result, nil
}

// extract tries the remote service first and falls back to local
// extraction; only total failure of both propagates.
func (uc *AnalyzeFileUseCase) extract(ctx context.Context, content []byte, fileName string) (domain.Extraction, error) {
	extraction, remoteErr := uc.remote.Extract(ctx, content, fileName)
	if remoteErr == nil {
		return extraction, nil
	}
	uc.log.Warn("remote extraction failed, trying local fallback", "file", fileName, "error", remoteErr)

	extraction, localErr := uc.local.Extract(ctx, content, fileName)
	if localErr == nil {
		return extraction, nil
	}
	return domain.Extraction{}, fmt.Errorf("remote: %w; local: %w", remoteErr, localErr)
}

// recordFailure persists the failed attempt so analytics can count it.
// Persistence stays best-effort on this path too.
func (uc *AnalyzeFileUseCase) recordFailure(ctx context.Context, fileName string, fileSize int64, textLength int, start time.Time, pipeErr error) {
	errType := domain.ErrorTypeOf(pipeErr)
	uc.persist(ctx, domain.Record{
		ID:               uuid.NewString(),
		FileName:         fileName,
		Summary:          domain.Guidance(pipeErr),
		ProcessingMethod: domain.MethodUserGuidance,
		DocumentType:     domain.TypeOther,
		FileSize:         fileSize,
		TextLength:       textLength,
		ProcessingTimeMs: uc.now().Sub(start).Milliseconds(),
		Success:          false,
		ErrorType:        &errType,
		CreatedAt:        uc.now().UTC(),
	})
}

func (uc *AnalyzeFileUseCase) persist(ctx context.Context, rec domain.Record) {
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
