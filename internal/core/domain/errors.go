package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrExtractionFailed means every extraction strategy was exhausted.
	ErrExtractionFailed = errors.New("text extraction failed")
	// ErrTextQualityPoor means text was extracted but judged unusable.
	ErrTextQualityPoor = errors.New("extracted text quality poor")
	// ErrContentInsufficient means validated text yields too few sentences.
	ErrContentInsufficient = errors.New("content insufficient for summary")
	// ErrSummaryFailed means summary composition failed outright.
	ErrSummaryFailed = errors.New("summary generation failed")
	// ErrProcessingFailed covers any other pipeline failure.
	ErrProcessingFailed = errors.New("processing failed")

	ErrInvalidInput = errors.New("invalid input")
	ErrTemporary    = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// ErrorTypeOf maps a pipeline error to the persisted failure reason.
func ErrorTypeOf(err error) ErrorType {
	switch {
	case IsKind(err, ErrExtractionFailed):
		return ErrorExtractionFailed
	case IsKind(err, ErrTextQualityPoor):
		return ErrorTextQualityPoor
	case IsKind(err, ErrContentInsufficient):
		return ErrorContentInsufficient
	case IsKind(err, ErrSummaryFailed):
		return ErrorSummaryFailed
	default:
		return ErrorProcessingFailed
	}
}

// Guidance returns the user-facing suggestion for a pipeline error. Every
// pipeline rejection points the user at manual text entry.
func Guidance(err error) string {
	switch {
	case IsKind(err, ErrExtractionFailed):
		return "This PDF might be scanned, have complex formatting, or contain mostly images. Please use the manual text input to copy and paste the content."
	case IsKind(err, ErrTextQualityPoor):
		return "Extracted text quality is insufficient for analysis. Please use the manual text input to copy and paste the content for better results."
	case IsKind(err, ErrContentInsufficient):
		return "The extracted text does not contain enough meaningful content for analysis. Please use the manual text input."
	case IsKind(err, ErrSummaryFailed):
		return "The text was extracted but could not be processed into a meaningful summary. Please use the manual text input."
	default:
		return "Please try uploading a different PDF or use the manual text input."
	}
}
