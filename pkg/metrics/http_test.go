package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHTTPMetricsExportsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics(reg)

	metrics.ObserveRequest("GET", "/products", 200, 30*time.Millisecond)
	metrics.ObserveRequest("GET", "/products", 200, 10*time.Millisecond)
	metrics.ObserveRequest("POST", "/requests", 201, 5*time.Millisecond)

	got := testutil.ToFloat64(metrics.requests.WithLabelValues("GET", "/products", "200"))
	if got != 2 {
		t.Fatalf("expected 2 GET /products requests, got %f", got)
	}

	got = testutil.ToFloat64(metrics.requests.WithLabelValues("POST", "/requests", "201"))
	if got != 1 {
		t.Fatalf("expected 1 POST /requests request, got %f", got)
	}
}

func TestHTTPMetricsNilSafe(t *testing.T) {
	var metrics *HTTPMetrics
	metrics.ObserveRequest("GET", "/products", 200, time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.ObserveRequest("", "", 500, time.Millisecond)
}
