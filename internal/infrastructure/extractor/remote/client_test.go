package remote

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ekomarov/docsight/internal/core/domain"
	"github.com/ekomarov/docsight/internal/infrastructure/resilience"
)

func TestExtractRunsUploadThenConvert(t *testing.T) {
	content := []byte("%PDF-1.4 fake content")
	var uploadedName string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "key-123" {
			t.Fatalf("missing api key header")
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		switch r.URL.Path {
		case "/file/upload/base64":
			if got, _ := payload["file"].(string); got != base64.StdEncoding.EncodeToString(content) {
				t.Fatalf("unexpected file payload")
			}
			uploadedName, _ = payload["name"].(string)
			_, _ = w.Write([]byte(`{"url":"https://files.example/abc.pdf"}`))
		case "/pdf/convert/to/text":
			if got, _ := payload["url"].(string); got != "https://files.example/abc.pdf" {
				t.Fatalf("convert must use uploaded url, got %v", got)
			}
			_, _ = w.Write([]byte(`{"body":"Invoice total due: $400"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := New(server.URL, "key-123", 5*time.Second)
	got, err := client.Extract(context.Background(), content, "invoice.pdf")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if uploadedName != "invoice.pdf" {
		t.Fatalf("unexpected uploaded name %q", uploadedName)
	}
	if got.Text != "Invoice total due: $400" {
		t.Fatalf("unexpected text %q", got.Text)
	}
	if got.Method != domain.MethodRemoteExtraction {
		t.Fatalf("unexpected method %q", got.Method)
	}
}

func TestExtractFailsWithoutAPIKey(t *testing.T) {
	client := New("http://localhost:1", "", time.Second)
	if _, err := client.Extract(context.Background(), []byte("x"), "a.pdf"); err == nil {
		t.Fatal("expected error when key is missing")
	}
}

func TestExtractEmptyUploadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, "key", time.Second)
	_, err := client.Extract(context.Background(), []byte("x"), "a.pdf")
	if err == nil || !strings.Contains(err.Error(), "no file url") {
		t.Fatalf("expected upload url error, got %v", err)
	}
}

func TestExtractIncludesHTTPBodyInError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := New(server.URL, "key", time.Second)
	_, err := client.Extract(context.Background(), []byte("x"), "a.pdf")
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected HTTPStatusError, got %v", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected response body in error, got %v", err)
	}
}

func TestResilientRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/file/upload/base64":
			attempts++
			if attempts < 3 {
				http.Error(w, "busy", http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"url":"https://files.example/x.pdf"}`))
		case "/pdf/convert/to/text":
			_, _ = w.Write([]byte(`{"body":"recovered text content"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	executor := resilience.NewExecutor(resilience.Config{
		RetryMaxAttempts:    3,
		RetryInitialBackoff: time.Millisecond,
		RetryMaxBackoff:     time.Millisecond,
		RetryMultiplier:     1.0,
	})
	wrapped := NewResilient(New(server.URL, "key", time.Second), executor)

	got, err := wrapped.Extract(context.Background(), []byte("x"), "a.pdf")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 upload attempts, got %d", attempts)
	}
	if got.Text != "recovered text content" {
		t.Fatalf("unexpected text %q", got.Text)
	}
}

func TestClassifyExtractionError(t *testing.T) {
	retryable := classifyExtractionError(&HTTPStatusError{StatusCode: http.StatusBadGateway})
	if !retryable.Retryable || !retryable.RecordFailure {
		t.Fatalf("5xx must be retryable: %+v", retryable)
	}
	terminal := classifyExtractionError(&HTTPStatusError{StatusCode: http.StatusUnprocessableEntity})
	if terminal.Retryable {
		t.Fatalf("4xx must not be retryable: %+v", terminal)
	}
	canceled := classifyExtractionError(context.Canceled)
	if canceled.Retryable || canceled.RecordFailure {
		t.Fatalf("cancellation must not trip the breaker: %+v", canceled)
	}
}
