package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	path   string
	status int
}

type observerStub struct {
	calls []observation
}

func (o *observerStub) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	o.calls = append(o.calls, observation{method: method, path: path, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &observerStub{}
	r := gin.New()
	r.Use(Metrics(obs, "/metrics"))
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/v1/analyses", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	for _, target := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/analyses"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/random/path"},
	} {
		req, err := http.NewRequest(target.method, target.path, nil)
		require.NoError(t, err)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, obs.calls, 2)
	assert.Equal(t, observation{http.MethodPost, "/api/v1/analyses", http.StatusBadRequest}, obs.calls[0])
	assert.Equal(t, observation{http.MethodGet, "unmatched", http.StatusNotFound}, obs.calls[1])
}
