package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/acc-analyzer/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation for the analyzer.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	analysesTotal   *prometheus.CounterVec
	findingsTotal   *prometheus.CounterVec
	exportsTotal    *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	analysesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "acc_analyses_total",
		Help: "Requirement analyses by diversity and ACEX outcome",
	}, []string{"diversity", "acex"})

	findingsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "acc_findings_total",
		Help: "Findings emitted by severity",
	}, []string{"severity"})

	exportsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "acc_exports_total",
		Help: "Rendered analysis documents by format",
	}, []string{"format"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, analysesTotal, findingsTotal, exportsTotal, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		analysesTotal:   analysesTotal,
		findingsTotal:   findingsTotal,
		exportsTotal:    exportsTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordAnalysis counts an evaluation outcome and its findings.
func (m *MetricsService) RecordAnalysis(analysis models.Analysis) {
	if m == nil {
		return
	}
	diversity := "pending"
	if analysis.DiversityMet {
		diversity = "met"
	}
	m.analysesTotal.WithLabelValues(diversity, string(analysis.ACEX)).Inc()
	for _, finding := range analysis.Findings {
		m.findingsTotal.WithLabelValues(string(finding.Severity)).Inc()
	}
}

// RecordExport counts a rendered document.
func (m *MetricsService) RecordExport(format string) {
	if m == nil {
		return
	}
	m.exportsTotal.WithLabelValues(format).Inc()
}
