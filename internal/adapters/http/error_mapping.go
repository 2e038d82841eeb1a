package httpadapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ekomarov/docsight/internal/core/domain"
)

// pipelineErrorResponse mirrors what the UI renders when a document is
// rejected: a machine-readable code plus human guidance.
type pipelineErrorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	Details  string `json:"details"`
	FileName string `json:"fileName,omitempty"`
	FileSize string `json:"fileSize,omitempty"`
}

func writePipelineError(w http.ResponseWriter, err error, fileName string, fileSize int64) {
	resp := pipelineErrorResponse{
		Error:    string(domain.ErrorTypeOf(err)),
		Message:  kindMessage(err),
		Details:  domain.Guidance(err),
		FileName: fileName,
	}
	if fileSize > 0 {
		resp.FileSize = fmt.Sprintf("%dKB", fileSize/1024)
	}
	writeJSON(w, statusForError(err), resp)
}

// statusForError distinguishes content rejections (the document itself is
// the problem) from server faults.
func statusForError(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrExtractionFailed),
		domain.IsKind(err, domain.ErrTextQualityPoor),
		domain.IsKind(err, domain.ErrContentInsufficient),
		domain.IsKind(err, domain.ErrSummaryFailed):
		return http.StatusUnprocessableEntity
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func kindMessage(err error) string {
	for _, kind := range []error{
		domain.ErrExtractionFailed,
		domain.ErrTextQualityPoor,
		domain.ErrContentInsufficient,
		domain.ErrSummaryFailed,
		domain.ErrInvalidInput,
	} {
		if domain.IsKind(err, kind) {
			return kind.Error()
		}
	}
	return domain.ErrProcessingFailed.Error()
}

// rootMessage unwraps to the innermost cause for user-facing validation
// errors.
func rootMessage(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}
