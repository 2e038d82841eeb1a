package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ekomarov/docsight/internal/core/domain"
	"github.com/ekomarov/docsight/internal/observability/metrics"
)

type fileAnalyzerFake struct {
	result domain.AnalysisResult
	err    error
	name   string
	size   int
}

func (f *fileAnalyzerFake) AnalyzeFile(_ context.Context, fileName string, content []byte) (domain.AnalysisResult, error) {
	f.name = fileName
	f.size = len(content)
	if f.err != nil {
		return domain.AnalysisResult{}, f.err
	}
	return f.result, nil
}

type textAnalyzerFake struct {
	result domain.AnalysisResult
	err    error
	text   string
}

func (f *textAnalyzerFake) AnalyzeText(_ context.Context, _, text string) (domain.AnalysisResult, error) {
	f.text = text
	if f.err != nil {
		return domain.AnalysisResult{}, f.err
	}
	return f.result, nil
}

type historyFake struct {
	records []domain.Record
	err     error
}

func (f *historyFake) History(context.Context) ([]domain.Record, error) {
	return f.records, f.err
}

type analyticsFake struct {
	snapshot domain.AnalyticsSnapshot
}

func (f *analyticsFake) Analytics(context.Context) (domain.AnalyticsSnapshot, error) {
	return f.snapshot, nil
}

type insightsFake struct {
	snapshot domain.InsightsSnapshot
}

func (f *insightsFake) Insights(context.Context) (domain.InsightsSnapshot, error) {
	return f.snapshot, nil
}

type routerFakes struct {
	files     *fileAnalyzerFake
	texts     *textAnalyzerFake
	history   *historyFake
	analytics *analyticsFake
	insights  *insightsFake
}

func newTestHandler(fakes routerFakes, opts Options) http.Handler {
	if fakes.files == nil {
		fakes.files = &fileAnalyzerFake{}
	}
	if fakes.texts == nil {
		fakes.texts = &textAnalyzerFake{}
	}
	if fakes.history == nil {
		fakes.history = &historyFake{}
	}
	if fakes.analytics == nil {
		fakes.analytics = &analyticsFake{}
	}
	if fakes.insights == nil {
		fakes.insights = &insightsFake{}
	}
	rt := NewRouter(
		fakes.files,
		fakes.texts,
		fakes.history,
		fakes.analytics,
		fakes.insights,
		metrics.NewHTTPServerMetrics(serviceName),
		opts,
	)
	return rt.Handler()
}

func multipartUpload(t *testing.T, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func TestHealthz(t *testing.T) {
	handler := newTestHandler(routerFakes{}, Options{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("status = %d", res.Code)
	}
	if res.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected request id header")
	}
}

func TestAnalyzeDocumentSuccess(t *testing.T) {
	files := &fileAnalyzerFake{result: domain.AnalysisResult{
		FileName:         "report.pdf",
		Summary:          "This document contains 3 main points.",
		ProcessingMethod: domain.MethodRemoteExtraction,
		DocumentType:     domain.TypeTechnical,
		FileSize:         1024,
		TextLength:       4200,
	}}
	handler := newTestHandler(routerFakes{files: files}, Options{})

	body, contentType := multipartUpload(t, "report.pdf", []byte("%PDF-1.4 content"))
	req := httptest.NewRequest(http.MethodPost, "/v1/documents", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", res.Code, res.Body.String())
	}
	var resp domain.AnalysisResult
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Summary != files.result.Summary {
		t.Fatalf("summary = %q", resp.Summary)
	}
	if files.name != "report.pdf" || files.size != len("%PDF-1.4 content") {
		t.Fatalf("analyzer saw name=%q size=%d", files.name, files.size)
	}
}

func TestAnalyzeDocumentMissingFile(t *testing.T) {
	handler := newTestHandler(routerFakes{}, Options{})

	req := httptest.NewRequest(http.MethodPost, "/v1/documents", strings.NewReader("not multipart"))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", res.Code)
	}
}

func TestAnalyzeDocumentPipelineRejection(t *testing.T) {
	files := &fileAnalyzerFake{
		err: domain.WrapError(domain.ErrTextQualityPoor, "analyze_file", domain.ErrTextQualityPoor),
	}
	handler := newTestHandler(routerFakes{files: files}, Options{})

	body, contentType := multipartUpload(t, "scan.pdf", bytes.Repeat([]byte("x"), 4096))
	req := httptest.NewRequest(http.MethodPost, "/v1/documents", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", res.Code)
	}
	var resp pipelineErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != string(domain.ErrorTextQualityPoor) {
		t.Fatalf("error code = %q", resp.Error)
	}
	if resp.Details == "" || !strings.Contains(resp.Details, "manual text input") {
		t.Fatalf("details = %q", resp.Details)
	}
	if resp.FileName != "scan.pdf" {
		t.Fatalf("fileName = %q", resp.FileName)
	}
	if resp.FileSize != "4KB" {
		t.Fatalf("fileSize = %q", resp.FileSize)
	}
}

func TestAnalyzeTextSuccess(t *testing.T) {
	texts := &textAnalyzerFake{result: domain.AnalysisResult{
		FileName:         "notes",
		Summary:          "This document discusses: planning.",
		ProcessingMethod: domain.MethodManualText,
		DocumentType:     domain.TypeOther,
	}}
	handler := newTestHandler(routerFakes{texts: texts}, Options{})

	payload := `{"text":"Planning notes for the week ahead.","fileName":"notes"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/text", strings.NewReader(payload))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", res.Code, res.Body.String())
	}
	if texts.text != "Planning notes for the week ahead." {
		t.Fatalf("analyzer saw text %q", texts.text)
	}
}

func TestAnalyzeTextRejectsInvalidInput(t *testing.T) {
	texts := &textAnalyzerFake{
		err: domain.WrapError(domain.ErrInvalidInput, "analyze_text", domain.ErrInvalidInput),
	}
	handler := newTestHandler(routerFakes{texts: texts}, Options{})

	req := httptest.NewRequest(http.MethodPost, "/v1/text", strings.NewReader(`{"text":"short"}`))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.Code)
	}
}

func TestAnalyzeTextRejectsBadJSON(t *testing.T) {
	handler := newTestHandler(routerFakes{}, Options{})

	req := httptest.NewRequest(http.MethodPost, "/v1/text", strings.NewReader("{broken"))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.Code)
	}
}

func TestHistoryEndpoint(t *testing.T) {
	history := &historyFake{records: []domain.Record{
		{ID: "a", FileName: "report.pdf", DocumentType: domain.TypeTechnical},
	}}
	handler := newTestHandler(routerFakes{history: history}, Options{})

	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("status = %d", res.Code)
	}
	var resp struct {
		Documents []domain.Record `json:"documents"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Documents) != 1 || resp.Documents[0].ID != "a" {
		t.Fatalf("documents = %+v", resp.Documents)
	}
}

func TestReadEndpointsRejectPost(t *testing.T) {
	handler := newTestHandler(routerFakes{}, Options{})

	for _, path := range []string{"/v1/history", "/v1/analytics", "/v1/insights"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		if res.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s status = %d, want 405", path, res.Code)
		}
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	handler := newTestHandler(routerFakes{}, Options{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("status = %d", res.Code)
	}
}
