package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	refreshTotal    *prometheus.CounterVec
	refreshDuration *prometheus.HistogramVec
	refreshInFlight prometheus.Gauge
	queueLag        *prometheus.HistogramVec
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	refreshTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docsight",
			Subsystem: "worker",
			Name:      "insights_refresh_total",
			Help:      "Total insights refresh runs by status.",
		},
		[]string{"service", "status"},
	)
	refreshDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docsight",
			Subsystem: "worker",
			Name:      "insights_refresh_duration_seconds",
			Help:      "Insights refresh duration in seconds by status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)
	refreshInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "docsight",
			Subsystem: "worker",
			Name:      "insights_refresh_in_flight",
			Help:      "Number of in-flight insights refreshes.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	queueLag := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docsight",
			Subsystem: "worker",
			Name:      "queue_lag_seconds",
			Help:      "Delay between record creation and refresh start.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"service"},
	)

	registry.MustRegister(refreshTotal, refreshDuration, refreshInFlight, queueLag)

	return &WorkerMetrics{
		registry:        registry,
		refreshTotal:    refreshTotal,
		refreshDuration: refreshDuration,
		refreshInFlight: refreshInFlight,
		queueLag:        queueLag,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartRefresh() {
	m.refreshInFlight.Inc()
}

func (m *WorkerMetrics) FinishRefresh(service string, duration time.Duration, err error) {
	m.refreshInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.refreshTotal.WithLabelValues(service, status).Inc()
	m.refreshDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *WorkerMetrics) ObserveQueueLag(service string, lag time.Duration) {
	if lag < 0 {
		return
	}
	m.queueLag.WithLabelValues(service).Observe(lag.Seconds())
}
