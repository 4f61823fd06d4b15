package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/kanso-steps/internal/metrics"
)

func TestRequestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.NewTestManager()

	router := gin.New()
	router.Use(RequestMetrics(m))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/ok"},
		{http.MethodGet, "/ok"},
		{http.MethodPost, "/bad"},
	} {
		req, _ := http.NewRequest(r.method, r.path, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues("POST", "400")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.GaugeRequests))
}
