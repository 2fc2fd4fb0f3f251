package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type metricsExposer interface {
	Handler() http.Handler
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics metricsExposer
}

// NewMetricsHandler constructs a metrics handler.
func NewMetricsHandler(metrics metricsExposer) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for liveness usage.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports readiness. The evaluator has no external dependencies, so it is ready once serving.
func (h *MetricsHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
