package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/ekomarov/docsight/internal/core/domain"
	"github.com/ekomarov/docsight/internal/infrastructure/resilience"
)

type HTTPStatusError struct {
	Operation  string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "extraction status error"
	}
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("extraction %s status: %s", e.Operation, e.Status)
	}
	return fmt.Sprintf("extraction %s status: %s: %s", e.Operation, e.Status, strings.TrimSpace(e.Body))
}

// Resilient wraps the client with retry and circuit breaking around the
// whole two-step exchange.
type Resilient struct {
	client   *Client
	executor *resilience.Executor
}

func NewResilient(client *Client, executor *resilience.Executor) *Resilient {
	return &Resilient{client: client, executor: executor}
}

func (r *Resilient) Extract(ctx context.Context, content []byte, fileName string) (domain.Extraction, error) {
	var result domain.Extraction
	err := r.executor.Execute(ctx, "extract_text", func(ctx context.Context) error {
		var innerErr error
		result, innerErr = r.client.Extract(ctx, content, fileName)
		return innerErr
	}, classifyExtractionError)
	if err != nil {
		return domain.Extraction{}, err
	}
	return result, nil
}

func classifyExtractionError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}
	if resilience.IsCircuitOpen(err) {
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		if isRetryableHTTPStatus(statusErr.StatusCode) {
			return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
		}
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
	}

	return resilience.ErrorClassification{Retryable: false, RecordFailure: true}
}

func isRetryableHTTPStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
