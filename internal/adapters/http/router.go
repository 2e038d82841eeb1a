package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ekomarov/docsight/internal/core/domain"
	"github.com/ekomarov/docsight/internal/core/ports"
	"github.com/ekomarov/docsight/internal/observability/metrics"
)

const serviceName = "api"

// backpressureWait bounds how long a request queues for an in-flight slot
// before the server sheds it.
const backpressureWait = 100 * time.Millisecond

type Options struct {
	MaxUploadBytes int64
	RateLimitRPS   int
	RateLimitBurst int
	MaxInFlight    int
}

type Router struct {
	files     ports.FileAnalyzer
	texts     ports.TextAnalyzer
	history   ports.HistoryReader
	analytics ports.AnalyticsReader
	insights  ports.InsightsReader
	metrics   *metrics.HTTPServerMetrics
	opts      Options
}

func NewRouter(
	files ports.FileAnalyzer,
	texts ports.TextAnalyzer,
	history ports.HistoryReader,
	analytics ports.AnalyticsReader,
	insights ports.InsightsReader,
	m *metrics.HTTPServerMetrics,
	opts Options,
) *Router {
	return &Router{
		files:     files,
		texts:     texts,
		history:   history,
		analytics: analytics,
		insights:  insights,
		metrics:   m,
		opts:      opts,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/documents", rt.analyzeDocument)
	mux.HandleFunc("/v1/text", rt.analyzeText)
	mux.HandleFunc("/v1/history", rt.listHistory)
	mux.HandleFunc("/v1/analytics", rt.readAnalytics)
	mux.HandleFunc("/v1/insights", rt.readInsights)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	if rt.opts.MaxInFlight > 0 {
		handler = backpressureMiddleware(handler, rt.opts.MaxInFlight, backpressureWait)
	}
	if rt.opts.RateLimitRPS > 0 {
		handler = rateLimitMiddleware(handler, rt.opts.RateLimitRPS, rt.opts.RateLimitBurst)
	}
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	return requestIDMiddleware(accessLogMiddleware(handler))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) analyzeDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	if rt.opts.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, rt.opts.MaxUploadBytes)
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not read uploaded file"})
		return
	}

	start := time.Now()
	result, err := rt.files.AnalyzeFile(r.Context(), fileHeader.Filename, content)
	if err != nil {
		rt.recordAnalysis("upload", string(domain.ErrorTypeOf(err)), start)
		writePipelineError(w, err, fileHeader.Filename, int64(len(content)))
		return
	}

	rt.recordAnalysis("upload", "success", start)
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) analyzeText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Text     string `json:"text"`
		FileName string `json:"fileName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	start := time.Now()
	result, err := rt.texts.AnalyzeText(r.Context(), req.FileName, req.Text)
	if err != nil {
		if domain.IsKind(err, domain.ErrInvalidInput) {
			rt.recordAnalysis("manual", "invalid_input", start)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": rootMessage(err)})
			return
		}
		rt.recordAnalysis("manual", string(domain.ErrorTypeOf(err)), start)
		writePipelineError(w, err, req.FileName, 0)
		return
	}

	rt.recordAnalysis("manual", "success", start)
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) listHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	records, err := rt.history.History(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load history"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": records})
}

func (rt *Router) readAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	snapshot, err := rt.analytics.Analytics(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load analytics"})
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (rt *Router) readInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	snapshot, err := rt.insights.Insights(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load insights"})
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (rt *Router) recordAnalysis(mode, status string, start time.Time) {
	if rt.metrics == nil {
		return
	}
	rt.metrics.RecordAnalysis(serviceName, mode, status, time.Since(start))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write response", slog.String("error", err.Error()))
	}
}
