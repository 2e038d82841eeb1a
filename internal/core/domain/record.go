package domain

import "time"

type ProcessingMethod string

const (
	MethodRemoteExtraction   ProcessingMethod = "Remote API text extraction"
	MethodFallbackExtraction ProcessingMethod = "Basic PDF text extraction (fallback)"
	MethodManualText         ProcessingMethod = "Manual text input"
	MethodUserGuidance       ProcessingMethod = "User guidance (extraction failed)"
)

type DocumentType string

const (
	TypeInvoice      DocumentType = "Invoice/Bill"
	TypeContract     DocumentType = "Contract/Agreement"
	TypeResume       DocumentType = "Resume/CV"
	TypeFinancial    DocumentType = "Financial Report"
	TypeTechnical    DocumentType = "Technical Report"
	TypeLegal        DocumentType = "Legal Document"
	TypeMedical      DocumentType = "Medical Document"
	TypeAcademic     DocumentType = "Academic Paper"
	TypeManual       DocumentType = "Manual/Guide"
	TypePresentation DocumentType = "Presentation"
	TypeMarketing    DocumentType = "Marketing Material"
	TypePolicy       DocumentType = "Policy Document"
	TypeChangeOrder  DocumentType = "Change Order"
	TypeEstimate     DocumentType = "Estimate/Quote"
	TypeSchedule     DocumentType = "Schedule/Timeline"
	TypeOther        DocumentType = "Other"
)

type ErrorType string

const (
	ErrorExtractionFailed    ErrorType = "PDF_EXTRACTION_FAILED"
	ErrorTextQualityPoor     ErrorType = "PDF_TEXT_QUALITY_POOR"
	ErrorContentInsufficient ErrorType = "PDF_CONTENT_INSUFFICIENT"
	ErrorSummaryFailed       ErrorType = "SUMMARY_GENERATION_FAILED"
	ErrorProcessingFailed    ErrorType = "PROCESSING_FAILED"
)

// Record is the persisted result of one processing attempt. Records are
// immutable after creation; the only write after the fact is the one-time
// legacy-field backfill performed by the repository.
type Record struct {
	ID               string           `json:"id"`
	FileName         string           `json:"fileName"`
	Summary          string           `json:"summary"`
	ProcessingMethod ProcessingMethod `json:"processingMethod"`
	DocumentType     DocumentType     `json:"documentType"`
	FileSize         int64            `json:"fileSize"`
	TextLength       int              `json:"textLength"`
	ProcessingTimeMs int64            `json:"processingTimeMs"`
	Success          bool             `json:"success"`
	ErrorType        *ErrorType       `json:"errorType"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// RawRecord mirrors a stored row before normalization. Rows written before
// the analytics fields existed can miss any of the optional fields.
type RawRecord struct {
	ID               string
	FileName         string
	Summary          string
	ProcessingMethod *string
	DocumentType     *string
	FileSize         *int64
	TextLength       *int64
	ProcessingTimeMs *int64
	Success          *bool
	ErrorType        *string
	CreatedAt        time.Time
}

// NormalizeLegacyRecord fills missing optional fields with the compatibility
// defaults: absent success reads as true, absent enums as their defaults and
// absent numerics as zero.
func NormalizeLegacyRecord(raw RawRecord) Record {
	rec := Record{
		ID:               raw.ID,
		FileName:         raw.FileName,
		Summary:          raw.Summary,
		ProcessingMethod: MethodManualText,
		DocumentType:     TypeOther,
		Success:          true,
		CreatedAt:        raw.CreatedAt,
	}
	if raw.ProcessingMethod != nil && *raw.ProcessingMethod != "" {
		rec.ProcessingMethod = ProcessingMethod(*raw.ProcessingMethod)
	}
	if raw.DocumentType != nil && *raw.DocumentType != "" {
		rec.DocumentType = DocumentType(*raw.DocumentType)
	}
	if raw.FileSize != nil && *raw.FileSize > 0 {
		rec.FileSize = *raw.FileSize
	}
	if raw.TextLength != nil && *raw.TextLength > 0 {
		rec.TextLength = int(*raw.TextLength)
	}
	if raw.ProcessingTimeMs != nil && *raw.ProcessingTimeMs > 0 {
		rec.ProcessingTimeMs = *raw.ProcessingTimeMs
	}
	if raw.Success != nil {
		rec.Success = *raw.Success
	}
	if raw.ErrorType != nil && *raw.ErrorType != "" {
		et := ErrorType(*raw.ErrorType)
		rec.ErrorType = &et
	}
	return rec
}

// AnalysisResult is the in-memory outcome of one pipeline run, computed
// before (and independently of) the best-effort persist.
type AnalysisResult struct {
	FileName         string           `json:"fileName"`
	Summary          string           `json:"summary"`
	ProcessingMethod ProcessingMethod `json:"processingMethod"`
	DocumentType     DocumentType     `json:"documentType"`
	FileSize         int64            `json:"fileSize"`
	TextLength       int              `json:"textLength"`
}

// Extraction is the outcome of one extraction strategy.
type Extraction struct {
	Text   string
	Method ProcessingMethod
}
