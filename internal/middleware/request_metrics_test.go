package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fitcoach/internal/middleware"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	r := mux.NewRouter()
	r.HandleFunc("/plan/{id}/pdf", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Use(middleware.RequestMetrics(metricsManager))

	for _, id := range []string{"a", "b", "c"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/plan/"+id+"/pdf", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "404")))
	// a single route label for all report ids
	assert.Equal(t, 1, testutil.CollectAndCount(metricsManager.HistogramRequestDuration))
}
